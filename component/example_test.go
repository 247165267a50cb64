package component_test

import (
	"fmt"

	"github.com/ardnew/hwsys/component"
)

func Example() {
	uart, err := component.NewComponent("UART",
		component.NewParameter("BASE", "0x1000"))
	if err != nil {
		panic(err)
	}

	_ = uart.AddMember(component.KindRegister,
		component.NewRegister("CTRL", "BASE + 0x0"))
	_ = uart.AddMember(component.KindRegister,
		component.NewRegister("DATA", "BASE + 0x4"))
	_ = uart.AddMember(component.KindInterface,
		component.NewInterface("APB", "BASE + 0x8"))

	chip := component.NewSystem("MyChip")
	chip.Add(component.NewInstance("UART0", uart))

	uart1 := component.NewInstance("UART1", uart)
	if err := uart1.Override("BASE", "0x2000"); err != nil {
		panic(err)
	}

	chip.Add(uart1)

	for _, inst := range chip.Instances() {
		regs := inst.Resolve(component.KindRegister)
		fmt.Println(inst.Name(), regs["CTRL"], "|", regs["DATA"])
	}

	fmt.Println(uart1.Resolve(component.KindInterface)["APB"])

	// Output:
	// UART0 0x1000 + 0x0 | 0x1000 + 0x4
	// UART1 0x2000 + 0x0 | 0x2000 + 0x4
	// 0x2000 + 0x8
}

func ExampleInstance_Override() {
	timer, _ := component.NewComponent("TIMER",
		component.NewParameter("BASE", "0x3000"))

	t0 := component.NewInstance("T0", timer)

	err := t0.Override("BAS", "0x4000")
	fmt.Println(err)

	// Output:
	// unknown parameter
}
