package database

import (
	"time"

	"github.com/uptrace/bun"
)

type ConversionRecord struct {
	bun.BaseModel `bun:"table:conversion_records"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Input      string    `bun:"input,notnull" json:"input"`
	Unit       string    `bun:"unit,notnull" json:"unit"`
	GMT        string    `bun:"gmt,notnull" json:"gmt"`
	Local      string    `bun:"local,notnull" json:"local"`
	ZoneLabel  string    `bun:"zone_label" json:"zone_label"`
	Hash       string    `bun:"hash,unique,notnull" json:"hash"`
	DetectedAt time.Time `bun:"detected_at,notnull,default:current_timestamp" json:"detected_at"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
