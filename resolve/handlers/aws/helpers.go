package aws

import "opsboard/pkg/snapshot"

// findByID locates the record in a collection whose derived identifier
// equals id. Single-record leaves are checked directly, sequence leaves are
// scanned in order.
func findByID(c snapshot.Collection, id string, derive func(snapshot.Record) string) snapshot.Record {
	if id == "" {
		return nil
	}
	if rec, ok := c.One(); ok {
		if derive(rec) == id {
			return rec
		}
		return nil
	}
	for _, rec := range c.Records() {
		if derive(rec) == id {
			return rec
		}
	}
	return nil
}
