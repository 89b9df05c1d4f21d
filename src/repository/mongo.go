package repository

import (
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findOptions(limit int64) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
