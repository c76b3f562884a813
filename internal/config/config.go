package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/questbot/internal/model"
)

// Bot holds all configuration for the quest bot.
type Bot struct {
	LogLevel string `yaml:"log_level"`
	// Debug enables per-tick AI logging.
	Debug        bool          `yaml:"debug"`
	TickInterval time.Duration `yaml:"tick_interval"`

	World  WorldConfig  `yaml:"world"`
	Quests []QuestEntry `yaml:"quests"`

	// Database (optional journal of behavior runs)
	Database DatabaseConfig `yaml:"database"`

	// Behaviors run one after another in profile order.
	Behaviors []BehaviorEntry `yaml:"behaviors"`
}

// WorldConfig describes the simulated world the bot plays in.
type WorldConfig struct {
	InteractRange      float64       `yaml:"interact_range"`
	Speed              float64       `yaml:"speed"`
	Lag                time.Duration `yaml:"lag"`
	StepInterval       time.Duration `yaml:"step_interval"`
	DespawnGameObjects bool          `yaml:"despawn_game_objects"`
	Start              Position      `yaml:"start"`
	Objects            []SpawnEntry  `yaml:"objects"`
}

// Position is a point in world coordinates.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Location converts the position to model.Location.
func (p Position) Location() model.Location {
	return model.NewLocation(p.X, p.Y, p.Z)
}

// SpawnEntry is one object placed in the world at startup.
type SpawnEntry struct {
	Entry    uint32           `yaml:"entry"`
	Type     model.ObjectType `yaml:"type"`
	Name     string           `yaml:"name"`
	Position `yaml:",inline"`
}

// QuestEntry is a quest already accepted when the bot starts.
type QuestEntry struct {
	ID         uint32           `yaml:"id"`
	Name       string           `yaml:"name"`
	Objectives []ObjectiveEntry `yaml:"objectives"`
}

// ObjectiveEntry completes the quest after Count interactions with template Entry.
type ObjectiveEntry struct {
	Entry uint32 `yaml:"entry"`
	Count int    `yaml:"count"`
}

// BehaviorEntry is one profile step: behavior name plus raw attributes.
type BehaviorEntry struct {
	Name string            `yaml:"name"`
	Args map[string]string `yaml:"args"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBot returns Bot config with sensible defaults.
func DefaultBot() Bot {
	return Bot{
		LogLevel:     "info",
		TickInterval: 250 * time.Millisecond,
		World: WorldConfig{
			InteractRange:      5,
			Speed:              7,
			Lag:                250 * time.Millisecond,
			StepInterval:       100 * time.Millisecond,
			DespawnGameObjects: true,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "questbot",
			Password: "questbot",
			DBName:   "questbot",
			SSLMode:  "disable",
		},
	}
}

// Validate checks the parts of the config the bot cannot start without.
// Behavior attributes are validated by the behaviors themselves.
func (b Bot) Validate() error {
	var errs []error
	if b.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", b.TickInterval))
	}
	if b.World.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("world.step_interval must be positive, got %s", b.World.StepInterval))
	}
	if len(b.Behaviors) == 0 {
		errs = append(errs, errors.New("no behaviors configured"))
	}
	for i, be := range b.Behaviors {
		if be.Name == "" {
			errs = append(errs, fmt.Errorf("behaviors[%d]: name is required", i))
		}
	}
	seen := make(map[uint32]struct{}, len(b.Quests))
	for _, q := range b.Quests {
		if _, dup := seen[q.ID]; dup {
			errs = append(errs, fmt.Errorf("quest %d listed twice", q.ID))
		}
		seen[q.ID] = struct{}{}
	}
	return errors.Join(errs...)
}

// LoadBot loads bot config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBot(path string) (Bot, error) {
	cfg := DefaultBot()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
