// Package mobrank extracts mobilizer achievement rankings from spreadsheets.
package mobrank

import (
	"time"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/parser"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/schema"
	"go.uber.org/zap"
)

// Options configures analysis behavior.
type Options struct {
	// Groups overrides the group registry. If nil, schema.Default() is used.
	Groups []models.GroupSchema
	// Logger receives progress and fault logs. If nil, logging is disabled.
	Logger *zap.Logger
	// Now supplies the generation timestamp. If nil, time.Now is used.
	Now func() time.Time
	// CSV configures loading of .csv inputs.
	CSV parser.CSVOptions
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		CSV: parser.DefaultCSVOptions(),
	}
}

func (o Options) groups() []models.GroupSchema {
	if o.Groups != nil {
		return o.Groups
	}
	return schema.Default()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
