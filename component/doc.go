// Package component models parameterized hardware components and resolves
// the expressions of their members for each instance.
//
// # Model
//
// The model has three levels:
//
//   - [Component]: a reusable definition with ordered [Parameter] defaults
//     and [Member] values grouped by [Kind] (registers, interfaces).
//   - [Instance]: a named use of a shared Component with sparse parameter
//     overrides.
//   - the resolved map returned by [Instance.Resolve]: member name to
//     expression text with the instance's effective parameter values
//     substituted.
//
// A [System] is an ordered collection of instances.
//
// # Example
//
//	uart, _ := component.NewComponent("UART",
//		component.NewParameter("BASE", "0x1000"))
//	_ = uart.AddMember(component.KindRegister,
//		component.NewRegister("DATA", "BASE + 0x4"))
//
//	uart1 := component.NewInstance("UART1", uart)
//	_ = uart1.Override("BASE", "0x2000")
//
//	uart1.Resolve(component.KindRegister) // map[DATA:0x2000 + 0x4]
//
// # Member kinds
//
// Members are any type implementing [Member]. They are stored per [Kind],
// so the resolver never inspects concrete member types. A new kind is a
// new Kind constant, a new Member type, and a case in [NewMember] and the
// Kind switches.
//
// # Sharing
//
// [NewInstance] seals its Component. After that, [Component.AddParameter]
// and [Component.AddMember] fail with [ErrSealed], so every Instance of a
// definition observes the same parameters and members.
//
// # Substitution
//
// See [Resolver] for the substitution rules. Expressions are never
// evaluated or validated; unknown tokens are left as they are.
package component
