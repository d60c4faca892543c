package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

func Success(message string) {
	log.Info("✅ " + message)
}

func Error(message string, err error) {
	if err != nil {
		log.Error("❌ " + message + ": " + err.Error())
		return
	}
	log.Error("❌ " + message)
}

func Warning(message string) {
	log.Warn("⚠️ " + message)
}

func Info(message string) {
	log.Info("ℹ️ " + message)
}

func Debug(message string) {
	log.Debug("🐛 " + message)
}

func Printf(format string, args ...interface{}) {
	log.Info(fmt.Sprintf("📝 "+format, args...))
}

func Fatal(message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	log.Fatal("💥 " + message)
}
