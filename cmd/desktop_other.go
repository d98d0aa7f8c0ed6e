//go:build !windows

package cmd

import (
	"errors"

	"github.com/Norgate-AV/winfx/internal/logger"
)

var errUnsupported = errors.New("winfx only runs on Windows")

func openDesktop(logger.LoggerInterface) (Desktop, error) {
	return nil, errUnsupported
}
