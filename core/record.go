package core

import "sync"

// Record represents a single diagnostic message with its metadata.
// Records are ephemeral: composed at the call site, written once,
// never retained.
type Record struct {
	Level   Level
	Tag     string
	Caller  CallerInfo
	Message string
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Level = LevelNone
	r.Tag = ""
	r.Caller = CallerInfo{}
	r.Message = ""
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Caller = CallerInfo{}
	recordPool.Put(r)
}
