package assistant

// DefaultResponse - ответ, если ни одно правило не сработало
const DefaultResponse = "Puedo ayudarte con información sobre centros médicos, horarios, servicios, emergencias, y cómo llegar a los centros más cercanos."

// DefaultRules возвращает стандартные правила. Порядок значим: "hola hospital" отвечает приветствием.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "hola", Match: Contains("hola"), Response: "¡Hola! ¿Cómo puedo ayudarte con información médica hoy?"},
		{Name: "hospital", Match: Contains("hospital"), Response: "Puedo ayudarte a encontrar hospitales cerca de tu ubicación. Los hospitales están marcados en rojo en el mapa."},
		{Name: "clinica", Match: Contains("clinica"), Response: "Las clínicas están marcadas en azul en el mapa. Ofrecen servicios especializados y consultas programadas."},
		{Name: "emergencia", Match: Contains("emergencia"), Response: "Para emergencias médicas, los hospitales con servicio 24 horas están disponibles. Puedes ver la ruta al más cercano en el mapa."},
		{Name: "ubicacion", Match: Contains("ubicacion"), Response: "Tu ubicación actual se muestra en el mapa. Desde ahí puedes ver los centros médicos más cercanos."},
		{Name: "horarios", Match: Contains("horarios"), Response: "Los horarios varían por centro. Hospitales generalmente 24hrs, clínicas y centros de salud tienen horarios específicos."},
		{Name: "cobertura", Match: Contains("cobertura"), Response: "El análisis de cobertura muestra áreas con acceso médico en un radio de 1km. Las zonas sin cobertura se destacan en el mapa."},
		{Name: "ruta", Match: Contains("ruta"), Response: "Para crear una ruta, haz clic en cualquier centro médico del mapa o selecciona uno de la tabla de centros médicos."},
		{Name: "servicios", Match: Contains("servicios"), Response: "Cada centro médico ofrece diferentes servicios. Puedes ver los servicios disponibles en los popups del mapa o en la tabla."},
	}
}
