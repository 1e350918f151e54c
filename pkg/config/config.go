package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Stock StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StockConfig parámetros del motor de inventario.
//
// FinishedDefaultReorder es el umbral de reorden asumido cuando un producto
// terminado se registra sin umbral explícito; las materias primas siempre lo
// exigen en la petición.
type StockConfig struct {
	NearExpiryDays         int   // ventana de pre-vencimiento en días
	FinishedDefaultReorder int64 // umbral de reorden por defecto para producto terminado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, STOCK_NEAR_EXPIRY_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "pharma-erp"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Stock: StockConfig{
			NearExpiryDays:         getInt(v, "STOCK_NEAR_EXPIRY_DAYS", 30),
			FinishedDefaultReorder: int64(getInt(v, "STOCK_FINISHED_DEFAULT_REORDER", 50)),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
