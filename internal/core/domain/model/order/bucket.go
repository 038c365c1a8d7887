package order

import "strings"

// Bucket is one of the four coarse categories customer views group orders by.
type Bucket string

const (
	BucketProcessing    Bucket = "processing"
	BucketUnderDelivery Bucket = "under_delivery"
	BucketCompleted     Bucket = "completed"
	BucketCancelled     Bucket = "cancelled"
)

// Buckets returns all buckets in display order.
func Buckets() []Bucket {
	return []Bucket{BucketProcessing, BucketUnderDelivery, BucketCompleted, BucketCancelled}
}

func (b Bucket) String() string {
	return string(b)
}

// Classify maps an arbitrary status string to a bucket. It never fails: known
// spellings resolve through the alias table, anything else through keyword
// matching, and garbage lands in BucketProcessing.
func Classify(raw string) Bucket {
	n := normalize(raw)
	if s, ok := aliases[n]; ok {
		return s.Bucket()
	}
	return classifyByKeyword(n)
}

// classifyByKeyword handles spellings missing from the alias table.
// Order matters: a status mentioning both delivery and cancellation is under delivery.
func classifyByKeyword(n string) Bucket {
	switch {
	case strings.Contains(n, "deliver"):
		return BucketUnderDelivery
	case strings.Contains(n, "cancel"), strings.Contains(n, "reject"), strings.Contains(n, "fail"):
		return BucketCancelled
	case strings.Contains(n, "complete"):
		return BucketCompleted
	default:
		return BucketProcessing
	}
}
