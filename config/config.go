package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"othello/game"
)

// Config holds the runtime settings of the match runner. Everything has
// a default; an othello.yaml in the working directory overrides it.
type Config struct {
	BlackDepth int
	WhiteDepth int
	Games      int
	LogLevel   string
	Weights    game.Weights
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("othello")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("log_level", "info")
	v.SetDefault("games", 1)
	v.SetDefault("search.black_depth", 4)
	v.SetDefault("search.white_depth", 4)

	w := game.DefaultWeights
	v.SetDefault("eval.edge_base", w.EdgeBase)
	v.SetDefault("eval.edge_slope", w.EdgeSlope)
	v.SetDefault("eval.edge_scale", w.EdgeScale)
	v.SetDefault("eval.current_base", w.CurrentBase)
	v.SetDefault("eval.current_slope", w.CurrentSlope)
	v.SetDefault("eval.current_late_base", w.CurrentLateBase)
	v.SetDefault("eval.current_late_slope", w.CurrentLateSlope)
	v.SetDefault("eval.late_move", w.LateMove)
	v.SetDefault("eval.potential", w.Potential)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		BlackDepth: v.GetInt("search.black_depth"),
		WhiteDepth: v.GetInt("search.white_depth"),
		Games:      v.GetInt("games"),
		LogLevel:   v.GetString("log_level"),
		Weights: game.Weights{
			EdgeBase:         v.GetInt("eval.edge_base"),
			EdgeSlope:        v.GetInt("eval.edge_slope"),
			EdgeScale:        v.GetInt("eval.edge_scale"),
			CurrentBase:      v.GetInt("eval.current_base"),
			CurrentSlope:     v.GetInt("eval.current_slope"),
			CurrentLateBase:  v.GetInt("eval.current_late_base"),
			CurrentLateSlope: v.GetInt("eval.current_late_slope"),
			LateMove:         v.GetInt("eval.late_move"),
			Potential:        v.GetInt("eval.potential"),
		},
	}
	if cfg.BlackDepth <= 0 || cfg.WhiteDepth <= 0 {
		return Config{}, fmt.Errorf("search depths must be positive, got black=%d white=%d", cfg.BlackDepth, cfg.WhiteDepth)
	}
	if cfg.Weights.EdgeScale <= 0 {
		return Config{}, fmt.Errorf("eval.edge_scale must be positive, got %d", cfg.Weights.EdgeScale)
	}
	return cfg, nil
}
