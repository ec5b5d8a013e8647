package interpreter

import "fmt"

// NameError reports a read of an undeclared variable or a call to an
// unknown function.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("未声明的名字: %s", e.Name)
}

// TypeError reports a value of the wrong runtime type reaching an
// operation that requires another: non-numeric arithmetic or inc/dec, or
// a non-boolean condition.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// ArityError reports a call whose argument count does not match the
// callee's parameter count.
type ArityError struct {
	Callee string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("调用 %s 需要 %d 个参数，实际传了 %d 个", e.Callee, e.Want, e.Got)
}

// ReturnOutsideFunctionError reports 爬远点 used outside of any function
// body.
type ReturnOutsideFunctionError struct{}

func (e *ReturnOutsideFunctionError) Error() string {
	return "爬远点 只能出现在函数体内"
}

// returnSignal is not a fault: it is how Return unwinds the Go call stack
// up to the enclosing function call. It implements error so it can travel
// through the same (Object, error) return channel as real faults; callers
// must check for it with errors.As before treating a non-nil error as
// fatal.
type returnSignal struct {
	Value Object
}

func (r *returnSignal) Error() string {
	return "return 信号逃逸到了函数调用边界之外"
}
