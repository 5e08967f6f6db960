package fieldcrypt

import "expvar"

// Process-wide counters, visible under /debug/vars as "fieldcrypt".
var stats = struct {
	encrypts *expvar.Int
	decrypts *expvar.Int
	failures *expvar.Int
}{
	encrypts: new(expvar.Int),
	decrypts: new(expvar.Int),
	failures: new(expvar.Int),
}

func init() {
	m := expvar.NewMap("fieldcrypt")
	m.Set("encrypts", stats.encrypts)
	m.Set("decrypts", stats.decrypts)
	m.Set("failures", stats.failures)
}

// Stats is a point-in-time copy of the envelope counters.
type Stats struct {
	Encrypts int64 `json:"encrypts"`
	Decrypts int64 `json:"decrypts"`
	Failures int64 `json:"failures"`
}

func Snapshot() Stats {
	return Stats{
		Encrypts: stats.encrypts.Value(),
		Decrypts: stats.decrypts.Value(),
		Failures: stats.failures.Value(),
	}
}
