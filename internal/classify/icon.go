package classify

import "github.com/shenikar/geoportal/internal/models"

const (
	DefaultCenterIcon   = "📍"
	DefaultIncidentIcon = "🚨"
)

// CenterIcon - глиф для маркера медицинского центра
func CenterIcon(t models.CenterType) string {
	switch t {
	case models.CenterHospital:
		return "🏥"
	case models.CenterClinic:
		return "🩺"
	case models.CenterHealthCenter:
		return "💊"
	default:
		return DefaultCenterIcon
	}
}

// IncidentIcon - глиф для типа инцидента
func IncidentIcon(t models.IncidentType) string {
	switch t {
	case models.IncidentCardiac:
		return "💓"
	case models.IncidentAccident:
		return "🚗"
	case models.IncidentRespiratory:
		return "🫁"
	case models.IncidentTrauma:
		return "🩹"
	case models.IncidentMedical:
		return "🏥"
	default:
		return DefaultIncidentIcon
	}
}
