package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Email    EmailConfig    `toml:"email"`
	Admin    AdminConfig    `toml:"admin"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EmailConfig настройки отправки писем через SendGrid
// Если api_key пустой, письма не отправляются (stub sender)
type EmailConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// AdminConfig настройки доступа к защищенным ручкам
type AdminConfig struct {
	Token string `toml:"token"`
}

// CalendarConfig настройки бизнес-календаря салона
// Изменяется только через конфиг и редеплой, в рантайме read-only
type CalendarConfig struct {
	DailyOpen           string                    `toml:"daily_open"`
	DailyClose          string                    `toml:"daily_close"`
	SlotDurationMinutes int                       `toml:"slot_duration_minutes"`
	BufferMinutes       int                       `toml:"buffer_minutes"`
	ClosedWeekdays      []int                     `toml:"closed_weekdays"`
	Holidays            []string                  `toml:"holidays"`
	SpecialHours        map[string]SpecialDayConf `toml:"special_hours"`
	MinAdvanceHours     int                       `toml:"min_advance_hours"`
	MaxAdvanceDays      int                       `toml:"max_advance_days"`
}

// SpecialDayConf переопределение часов работы на конкретную дату
type SpecialDayConf struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
