package render

import (
	"fmt"
	"runtime"

	"github.com/vulkan-go/vulkan"
)

// NewError maps a vulkan.Result to an error, nil on success. The message
// carries the caller's stack frame so buffer setup failures are traceable
// without a debugger attached.
func NewError(retVal vulkan.Result) error {
	if retVal == vulkan.Success {
		return nil
	}
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("render: vulkan error: %w (%d)", vulkan.Error(retVal), retVal)
	}
	return fmt.Errorf("render: vulkan error: %w (%d) on %s",
		vulkan.Error(retVal), retVal, newStackFrame(pc))
}

// IsError reports whether retVal is anything other than success.
func IsError(retVal vulkan.Result) bool {
	return retVal != vulkan.Success
}

// OrPanic panics with err after running the finalizers; does nothing on nil.
// For callers that treat device setup failure as unrecoverable.
func OrPanic(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	panic(err)
}

// CheckError recovers a panic into *err. Use as a deferred call at API
// boundaries that must not propagate panics.
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%+v", v)
	}
}
