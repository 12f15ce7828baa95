package events

// ItemMachineParts is the supply item consumed by machine maintenance.
const ItemMachineParts = "machine_parts"

// SuppliesStockedEventType is the event type identifier.
const SuppliesStockedEventType = "SUPPLIES_STOCKED"

// SuppliesStocked records inventory added to the agent's supply shelf.
// It is emitted as a separate fact from the funds transfer that paid for it,
// so projections can subscribe to either independently.
type SuppliesStocked struct {
	Item     string
	Quantity int
	UnitCost float64
}

// BuildSuppliesStocked creates a new SuppliesStocked event.
func BuildSuppliesStocked(item string, quantity int, unitCost float64) SuppliesStocked {
	return SuppliesStocked{
		Item:     item,
		Quantity: quantity,
		UnitCost: unitCost,
	}
}

// EventType returns the event type identifier.
func (e SuppliesStocked) EventType() string {
	return SuppliesStockedEventType
}

// MachinePurchasedEventType is the event type identifier.
const MachinePurchasedEventType = "MACHINE_PURCHASED"

// MachinePurchased records a new machine added to the laundromat floor.
type MachinePurchased struct {
	MachineID string
	Model     string
	Price     float64
	Eco       bool
}

// BuildMachinePurchased creates a new MachinePurchased event.
func BuildMachinePurchased(machineID string, model string, price float64, eco bool) MachinePurchased {
	return MachinePurchased{
		MachineID: machineID,
		Model:     model,
		Price:     price,
		Eco:       eco,
	}
}

// EventType returns the event type identifier.
func (e MachinePurchased) EventType() string {
	return MachinePurchasedEventType
}

// MachinesMaintainedEventType is the event type identifier.
const MachinesMaintainedEventType = "MACHINES_MAINTAINED"

// MachinesMaintained records a maintenance pass over the whole machine fleet.
type MachinesMaintained struct {
	MachineCount int
	PartsUsed    int
}

// BuildMachinesMaintained creates a new MachinesMaintained event.
func BuildMachinesMaintained(machineCount int, partsUsed int) MachinesMaintained {
	return MachinesMaintained{
		MachineCount: machineCount,
		PartsUsed:    partsUsed,
	}
}

// EventType returns the event type identifier.
func (e MachinesMaintained) EventType() string {
	return MachinesMaintainedEventType
}
