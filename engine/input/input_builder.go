package input

// InputBuilderOption is a functional option for configuring an Input.
type InputBuilderOption func(*inputImpl)

// WithAxis defines or replaces a single named axis.
//
// Parameters:
//   - name: the axis name
//   - axis: the axis definition
//
// Returns:
//   - InputBuilderOption: functional option to set the axis
func WithAxis(name string, axis Axis) InputBuilderOption {
	return func(in *inputImpl) {
		in.axes[name] = axis
	}
}

// WithAxes replaces the whole axis table. Names missing from axes read as 0.
//
// Parameters:
//   - axes: axis definitions keyed by name
//
// Returns:
//   - InputBuilderOption: functional option to set the axis table
func WithAxes(axes map[string]Axis) InputBuilderOption {
	return func(in *inputImpl) {
		in.axes = make(map[string]Axis, len(axes))
		for name, axis := range axes {
			in.axes[name] = axis
		}
	}
}

// WithDefaultAxes restores the built-in axis table, discarding earlier axis options.
//
// Returns:
//   - InputBuilderOption: functional option to reset the axis table
func WithDefaultAxes() InputBuilderOption {
	return func(in *inputImpl) {
		in.axes = DefaultAxes()
	}
}
