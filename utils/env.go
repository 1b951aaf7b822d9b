package utils

import (
	"dishrank-menu/structs"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

// EnvService loads config.yml from ConfigPath ("." when empty). Without a config
// file every key is read from the environment, "log.level" becoming LOG_LEVEL.
type EnvService struct {
	ConfigPath string
}

func (e *EnvService) InitEnv() {
	v := e.loadConfig()
	e.configToModel(v)
}

func (e *EnvService) loadConfig() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	path := e.ConfigPath
	if path == "" {
		path = "."
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// 找不到 config.yml 的話就抓取環境變數
			v.AutomaticEnv()
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {

			// 有找到 config.yml 但是發生了其他未知的錯誤
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dishrank-menu")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file.enable", 0)
	v.SetDefault("log.file.dir", "logs")
	v.SetDefault("log.elk.enable", 0)
	v.SetDefault("log.elk.index", "dishrank-menu")
	v.SetDefault("log.logstash.enable", 0)
	v.SetDefault("log.logstash.index", "dishrank-menu")
}

func (e *EnvService) configToModel(v *viper.Viper) {
	var config structs.EnviromentModel
	config.App.Name = v.GetString("app.name")
	config.Log.Level = v.GetString("log.level")
	config.Log.Format = v.GetString("log.format")
	config.Log.FileEnable = v.GetInt("log.file.enable")
	config.Log.FileDir = v.GetString("log.file.dir")
	config.Log.ElkEnable = v.GetInt("log.elk.enable")
	config.Log.ElkIndex = v.GetString("log.elk.index")
	config.Log.ElkURL = v.GetString("log.elk.url")
	config.Log.LogstashEnable = v.GetInt("log.logstash.enable")
	config.Log.LogstashURL = v.GetString("log.logstash.url")
	config.Log.LogstashIndex = v.GetString("log.logstash.index")
	EnvConfig = &config
}
