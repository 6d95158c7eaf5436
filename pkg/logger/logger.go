package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ServiceName попадает в каждую запись поля "service" на уровне процесса
const ServiceName = "geoportal"

func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout)
}

// NewWithOutput - JSON-логгер с заданным выводом
func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	log.SetOutput(out)
	log.AddHook(appHook{})

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// appHook проставляет имя приложения, если компонент не указал свое
type appHook struct{}

func (appHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (appHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["app"]; !ok {
		entry.Data["app"] = ServiceName
	}
	return nil
}
