package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log 是一个全局的 logrus 实例；InitLogger之前也能用，默认输出到stderr
var Log = logrus.New()

// InitLogger 初始化全局的Logger实例
func InitLogger(file, level string) error {
	// 1. 设置日志格式为JSON，结构化日志便于ELK、Loki等工具分析
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// 2. 设置日志输出，同时输出到控制台和文件；file为空时只输出到控制台
	var out io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stdout, f)
	}
	Log.SetOutput(out)

	// 3. 设置日志级别，开发时可以是debug，生产环境是info
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
	return nil
}
