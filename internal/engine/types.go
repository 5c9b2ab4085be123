package engine

import "fmt"

// Operation names a prime operation.
type Operation string

const (
	OpCheck    Operation = "check"
	OpList     Operation = "list"
	OpHighest  Operation = "highest"
	OpNext     Operation = "next"
	OpPrevious Operation = "prev"
	OpCount    Operation = "count"
	OpFactor   Operation = "factor"
	OpExtend   Operation = "extend"
)

// Method selects the exact test used by check.
type Method string

const (
	MethodAuto  Method = "auto"
	MethodTrial Method = "trial"
	MethodWheel Method = "wheel"
)

// ParseMethod validates a method name. An empty name selects MethodAuto.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodAuto:
		return MethodAuto, nil
	case MethodTrial, MethodWheel:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown check method %q (want auto, trial or wheel)", s)
	}
}

// Request describes one operation and its integer arguments.
type Request struct {
	Op     Operation
	Args   []uint64
	Method Method
}

// Result is the outcome of one operation.
type Result struct {
	Operation Operation `json:"operation" yaml:"operation"`
	Input     []uint64  `json:"input" yaml:"input"`
	Method    Method    `json:"method,omitempty" yaml:"method,omitempty"`
	IsPrime   *bool     `json:"isPrime,omitempty" yaml:"isPrime,omitempty"`
	Value     *uint64   `json:"value,omitempty" yaml:"value,omitempty"`
	Count     *int      `json:"count,omitempty" yaml:"count,omitempty"`
	Primes    []uint64  `json:"primes,omitempty" yaml:"primes,omitempty"`
	Factors   []uint64  `json:"factors,omitempty" yaml:"factors,omitempty"`
	Canceled  bool      `json:"canceled,omitempty" yaml:"canceled,omitempty"`
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
	Cache     CacheInfo `json:"cache" yaml:"cache"`
	Timing    Timing    `json:"timing" yaml:"timing"`
}

// CacheInfo describes the cache after the operation.
type CacheInfo struct {
	Size int    `json:"size" yaml:"size"`
	Max  uint64 `json:"max" yaml:"max"`
}

// Timing holds elapsed time in milliseconds.
type Timing struct {
	TotalMs int64 `json:"totalMs" yaml:"totalMs"`
}

// arity is the number of integer arguments each operation takes.
var arity = map[Operation]int{
	OpCheck:    1,
	OpList:     1,
	OpHighest:  0,
	OpNext:     1,
	OpPrevious: 1,
	OpCount:    2,
	OpFactor:   1,
}
