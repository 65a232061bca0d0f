package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPageBucket(t *testing.T) {
	for page, want := range map[int]string{0: "1", 1: "1", 2: "2-5", 5: "2-5", 6: "6-20", 20: "6-20", 21: "21+"} {
		assert.Equal(t, want, pageBucket(page), "page %d", page)
	}
}

func TestRecordRequest(t *testing.T) {
	listingRequests.Reset()

	RecordRequest(200, 1)
	RecordRequest(200, 3)
	RecordRequest(500, 4)

	assert.Equal(t, 1.0, testutil.ToFloat64(listingRequests.WithLabelValues("200", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(listingRequests.WithLabelValues("200", "2-5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(listingRequests.WithLabelValues("500", "2-5")))
}

func TestRecordError(t *testing.T) {
	listingErrors.Reset()

	RecordError("count")
	RecordError("count")

	assert.Equal(t, 2.0, testutil.ToFloat64(listingErrors.WithLabelValues("count")))
}
