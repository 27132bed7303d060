package kernels

import "fmt"

// ContractViolation is the panic value raised when a kernel receives
// parameters that no correctly built procedure can produce.
type ContractViolation struct {
	Op     string
	Detail string
}

func (c *ContractViolation) Error() string {
	return "kernels: " + c.Op + ": " + c.Detail
}

func violate(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}

func aliased(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
