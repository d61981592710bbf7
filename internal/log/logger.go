package log

import (
	"go.uber.org/zap"
)

var base = zap.NewNop()

// Init builds the global logger: production JSON config when prod is true,
// development config otherwise.
func Init(prod bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if prod {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	base = l
	zap.ReplaceGlobals(l)
	return l, nil
}

// L returns the global logger.
func L() *zap.Logger { return base }

func Infof(format string, args ...any)  { base.Sugar().Infof(format, args...) }
func Errorf(format string, args ...any) { base.Sugar().Errorf(format, args...) }
