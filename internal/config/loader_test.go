package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/apex/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.StoreDSN, convey.ShouldEqual, "file:./apex.db?cache=shared&mode=rwc")
				convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-2.5-pro")
				convey.So(cfg.AIConcurrency, convey.ShouldEqual, 4)
				convey.So(cfg.AITimeoutSeconds, convey.ShouldEqual, 60)
				convey.So(cfg.MaxMediaBytes, convey.ShouldEqual, 24<<20)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("APEX_ADDR", ":8080")
			_ = os.Setenv("APEX_STORE_DSN", "memory")
			_ = os.Setenv("APEX_GEMINI_API_KEY", "test-key")
			_ = os.Setenv("APEX_AI_CONCURRENCY", "2")
			_ = os.Setenv("APEX_AI_TIMEOUT_SECONDS", "30")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.StoreDSN, convey.ShouldEqual, "memory")
				convey.So(cfg.GeminiAPIKey, convey.ShouldEqual, "test-key")
				convey.So(cfg.AIConcurrency, convey.ShouldEqual, 2)
				convey.So(cfg.AITimeout().Seconds(), convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":9090"
log_level: debug
store_dsn: memory
replay_cache_size: 16
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("APEX_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.ReplayCacheSize, convey.ShouldEqual, 16)
			})
		})

		convey.Convey("When loading config with invalid values", func() {
			_ = os.Setenv("APEX_MAX_MEDIA_BYTES", "-1")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"APEX_CONFIG",
		"APEX_ADDR",
		"APEX_LOG_LEVEL",
		"APEX_STORE_DSN",
		"APEX_GEMINI_API_KEY",
		"APEX_AI_CONCURRENCY",
		"APEX_AI_TIMEOUT_SECONDS",
		"APEX_MAX_MEDIA_BYTES",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "apex-config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp config file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("failed to write temp config file: %v", err)
	}
	_ = f.Close()
	return f.Name()
}
