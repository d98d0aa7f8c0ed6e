//go:build windows

package windows

import (
	"github.com/Norgate-AV/winfx/internal/logger"
)

// Client provides methods for interacting with Windows APIs
// It composes specialized managers for different categories of functionality
type Client struct {
	log        logger.LoggerInterface
	Window     *windowManager
	Display    *displayManager
	Compositor *compositor
	Monitor    *monitorManager
}

// NewClient creates a new Windows API client
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{
		log:        log,
		Window:     newWindowManager(log),
		Display:    newDisplayManager(log),
		Compositor: newCompositor(log),
		Monitor:    newMonitorManager(log),
	}
}
