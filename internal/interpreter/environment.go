package interpreter

// ========== 环境（作用域）系统 ==========

// Environment 是一个两层作用域：一张全局变量表，加上当前调用帧（可能
// 为 nil，表示顶层）。没有闭包，没有作用域链——函数体内只看得见全局
// 变量和自己的参数帧。
type Environment struct {
	globals   map[string]Object
	functions map[string]*Function
	frame     map[string]Object // nil outside of any function call
}

// NewEnvironment 创建一个空的全局环境。
func NewEnvironment() *Environment {
	return &Environment{
		globals:   make(map[string]Object),
		functions: make(map[string]*Function),
	}
}

// Get 按照"当前帧优先，否则全局"的顺序查找变量。
func (e *Environment) Get(name string) (Object, bool) {
	if e.frame != nil {
		if v, ok := e.frame[name]; ok {
			return v, true
		}
	}
	v, ok := e.globals[name]
	return v, ok
}

// Set 写入变量：如果当前帧里已经有这个名字，就写当前帧；否则写全局
// 环境。这样函数体内可以直接修改未被参数遮蔽的全局变量。
func (e *Environment) Set(name string, val Object) {
	if e.frame != nil {
		if _, ok := e.frame[name]; ok {
			e.frame[name] = val
			return
		}
	}
	e.globals[name] = val
}

// Declare implements 凶得很: if name is not visible anywhere, initialize it
// to Integer(0) in the innermost scope (the current frame if inside a
// call, else globals). An already-visible name is left untouched.
func (e *Environment) Declare(name string) {
	if _, ok := e.Get(name); ok {
		return
	}
	if e.frame != nil {
		e.frame[name] = &Integer{Value: 0}
		return
	}
	e.globals[name] = &Integer{Value: 0}
}

// pushFrame installs newFrame as the current call frame and returns a
// function that restores the previous one; callers use it with defer so
// that recursive calls nest correctly.
func (e *Environment) pushFrame(newFrame map[string]Object) func() {
	saved := e.frame
	e.frame = newFrame
	return func() { e.frame = saved }
}

// DefineFunction registers fn in the function table; redefinition
// silently overwrites the previous definition.
func (e *Environment) DefineFunction(fn *Function) {
	e.functions[fn.Name] = fn
}

// LookupFunction returns the named function definition, if any.
func (e *Environment) LookupFunction(name string) (*Function, bool) {
	fn, ok := e.functions[name]
	return fn, ok
}
