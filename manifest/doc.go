// Package manifest loads hardware designs from YAML or HCL files.
//
// A manifest declares components (parameters with default values and
// members whose expressions refer to them) and systems of named instances
// with per-instance parameter overrides. Decoding builds the design
// through the [component] API, so a manifest is rejected with the same
// errors the API reports: duplicate parameters, overrides of undeclared
// parameters, and so on.
//
// YAML:
//
//	components:
//	  - name: UART
//	    parameters:
//	      - { name: BASE, value: "0x1000" }
//	    registers:
//	      - { name: CTRL, address: "BASE + 0x0" }
//	    interfaces:
//	      - { name: APB, offset: "BASE + 0x8" }
//	systems:
//	  - name: MyChip
//	    instances:
//	      - { name: UART0, component: UART }
//	      - name: UART1
//	        component: UART
//	        overrides: { BASE: "0x2000" }
//
// HCL:
//
//	component "UART" {
//	  parameter "BASE" { value = "0x1000" }
//	  register "CTRL" { address = "BASE + 0x0" }
//	  interface "APB" { offset = "BASE + 0x8" }
//	}
//
//	system "MyChip" {
//	  instance "UART0" { component = "UART" }
//	  instance "UART1" {
//	    component = "UART"
//	    overrides = { BASE = "0x2000" }
//	  }
//	}
//
// Values are always strings. Unquoted YAML scalars are kept as written, so
// value: 0x1000 substitutes as 0x1000, not 4096.
package manifest
