//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options match everything",
			opts:     LogQueryOptions{Limit: 10, Skip: 5},
			expected: bson.M{},
		},
		{
			name: "registry audit filter",
			opts: LogQueryOptions{
				ActionTypes: []string{"add_pack_size", "remove_pack_size"},
				Operator:    "ops",
			},
			expected: bson.M{
				"action_type": bson.M{"$in": []string{"add_pack_size", "remove_pack_size"}},
				"operator":    "ops",
			},
		},
		{
			name: "path is matched literally",
			opts: LogQueryOptions{Path: "/api/v1/packs/(.*)"},
			expected: bson.M{
				"path": bson.M{"$regex": `/api/v1/packs/\(\.\*\)`, "$options": "i"},
			},
		},
		{
			name: "request fields and time range",
			opts: LogQueryOptions{
				RequestID: "req-1",
				Level:     "error",
				Method:    "DELETE",
				StartTime: &start,
				EndTime:   &end,
			},
			expected: bson.M{
				"request_id": "req-1",
				"level":      "error",
				"method":     "DELETE",
				"timestamp":  bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			name:     "open ended time range",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.filter())
		})
	}
}
