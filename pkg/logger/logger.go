package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает логгер сервиса диспетчеризации: JSON-формат с метками времени
// RFC3339 для агрегации, вывод в stdout
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)

	// Уровень логирования из конфигурации; некорректное значение не фатально
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
