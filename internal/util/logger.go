package util

import "go.uber.org/zap"

// JSON logs in production, colored console logs otherwise. "test" gives a no-op logger
func NewLogger(env string) *zap.SugaredLogger {
	switch env {
	case "production":
		return zap.Must(zap.NewProduction()).Sugar()
	case "test":
		return zap.NewNop().Sugar()
	default:
		return zap.Must(zap.NewDevelopment()).Sugar()
	}
}
