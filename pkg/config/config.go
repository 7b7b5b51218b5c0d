package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	JWTSecret string        `env:"JWT_SECRET_KEY" envDefault:"vidhub-dev-secret"`
	JWTExpire time.Duration `env:"JWT_EXPIRE" envDefault:"72h"`

	MySQL    MySQLConfig    `envPrefix:"MYSQL_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	RabbitMQ RabbitMQConfig `envPrefix:"RABBITMQ_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type MySQLConfig struct {
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"127.0.0.1"`
	Port     string `env:"PORT" envDefault:"3306"`
	DB       string `env:"DB" envDefault:"vidhub"`
}

// Addr为空时不启用视频缓存
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// URL为空时不投递互动事件
type RabbitMQConfig struct {
	URL string `env:"URL"`
}

type LogConfig struct {
	File  string `env:"FILE" envDefault:"vidhub.log"`
	Level string `env:"LEVEL" envDefault:"info"`
}

// DSN 用户名:密码@网络协议(地址:端口号)/数据库名?charset=字符集&parseTime=是否解析时间&loc=时区
func (c MySQLConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host + ":" + c.Port
	mc.DBName = c.DB
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Load 先尝试加载.env文件（没有也没关系），再从环境变量解析配置
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return Parse()
}

// Parse 只从当前环境变量解析配置
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
