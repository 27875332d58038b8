package clipboard

import (
	"github.com/tranngoc769/QTKit/internal/database"
	"github.com/tranngoc769/QTKit/internal/timestamp"
)

type MonitorEvent struct {
	Type   string
	Result timestamp.Result
	Record *database.ConversionRecord
	Error  error
}

const (
	EventDetection = "detection"
	EventError     = "error"
)
