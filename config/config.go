package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig holds process-level settings.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds HTTP server settings and server-held secrets.
type WebConfig struct {
	Host          string `yaml:"host" json:"host"`
	Port          int    `yaml:"port" json:"port"`
	JwtSecret     string `yaml:"jwt_secret" json:"jwt_secret"`
	SessionSecret string `yaml:"session_secret" json:"session_secret"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "mintshop",
		Location: "UTC",
		Workdir:  "/var/mintshop",
		Debug:    true,
	},
	Web: WebConfig{
		Host:          "0.0.0.0",
		Port:          1850,
		JwtSecret:     "9b6de5cc-mintshop-jwt-0769-b6e4e4e54b63",
		SessionSecret: "9b6de5cc-mintshop-web-0769-b6e4e4e54b63",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "mintshop",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/mintshop/mintshop.log",
	},
}

func setEnvValue(name string, val *string) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err = yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("MINTSHOP_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("MINTSHOP_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("MINTSHOP_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("MINTSHOP_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("MINTSHOP_WEB_PORT", &cfg.Web.Port)
	setEnvValue("MINTSHOP_WEB_JWT_SECRET", &cfg.Web.JwtSecret)
	setEnvValue("MINTSHOP_WEB_SESSION_SECRET", &cfg.Web.SessionSecret)

	setEnvValue("MINTSHOP_DB_TYPE", &cfg.Database.Type)
	setEnvValue("MINTSHOP_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("MINTSHOP_DB_PORT", &cfg.Database.Port)
	setEnvValue("MINTSHOP_DB_NAME", &cfg.Database.Name)
	setEnvValue("MINTSHOP_DB_USER", &cfg.Database.User)
	setEnvValue("MINTSHOP_DB_PWD", &cfg.Database.Passwd)
	setEnvBoolValue("MINTSHOP_DB_DEBUG", &cfg.Database.Debug)

	setEnvValue("MINTSHOP_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("MINTSHOP_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("MINTSHOP_LOGGER_FILENAME", &cfg.Logger.Filename)

	return cfg
}
