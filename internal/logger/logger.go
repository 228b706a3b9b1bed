package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New возвращает настроенный логгер. В release режиме пишем JSON,
// иначе человекочитаемый текстовый формат с debug уровнем.
func New(output io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(output)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
