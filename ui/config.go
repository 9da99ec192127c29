package ui

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/setanarut/palettepicker"
	"github.com/setanarut/palettepicker/utils"
)

type Config struct {
	PaletteLength int
	ImageSize     int
	SampleRadius  int
	DecodeTimeout time.Duration
	SuggestMethod utils.PaletteMethod
	LogLevel      logrus.Level
}

func DefaultConfig() Config {
	return Config{
		PaletteLength: palettepicker.DefaultCapacity,
		ImageSize:     utils.DefaultImageSize,
		SampleRadius:  0,
		DecodeTimeout: 10 * time.Second,
		SuggestMethod: utils.PaletteMethodDominantColor,
		LogLevel:      logrus.InfoLevel,
	}
}

// ConfigFromEnv reads PALETTE_* variables through lookup. Malformed values
// are logged and replaced by the default.
func ConfigFromEnv(lookup func(string) (string, bool), log logrus.FieldLogger) Config {
	cfg := DefaultConfig()
	positiveInt := func(key string, dst *int, allowZero bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || (n == 0 && !allowZero) {
			log.WithFields(logrus.Fields{"key": key, "value": v}).Warn("ignoring invalid setting")
			return
		}
		*dst = n
	}
	positiveInt("PALETTE_LENGTH", &cfg.PaletteLength, false)
	positiveInt("PALETTE_IMAGE_SIZE", &cfg.ImageSize, false)
	positiveInt("PALETTE_SAMPLE_RADIUS", &cfg.SampleRadius, true)

	if v, ok := lookup("PALETTE_DECODE_TIMEOUT"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.DecodeTimeout = d
		} else {
			log.WithFields(logrus.Fields{"key": "PALETTE_DECODE_TIMEOUT", "value": v}).Warn("ignoring invalid setting")
		}
	}
	if v, ok := lookup("PALETTE_SUGGEST_METHOD"); ok && v != "" {
		if m, ok := utils.ParsePaletteMethod(v); ok {
			cfg.SuggestMethod = m
		} else {
			log.WithFields(logrus.Fields{"key": "PALETTE_SUGGEST_METHOD", "value": v}).Warn("ignoring invalid setting")
		}
	}
	if v, ok := lookup("PALETTE_LOG_LEVEL"); ok && v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		} else {
			log.WithFields(logrus.Fields{"key": "PALETTE_LOG_LEVEL", "value": v}).Warn("ignoring invalid setting")
		}
	}
	return cfg
}

// SessionOptions translates the config for the core.
func (c Config) SessionOptions(log logrus.FieldLogger) palettepicker.Options {
	return palettepicker.Options{
		Capacity:     c.PaletteLength,
		SampleRadius: c.SampleRadius,
		Logger:       log,
	}
}
