package command

import (
	"strconv"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// machinesPerPart is the maintenance coverage of one machine part: a
// maintenance pass needs ceil(machineCount / machinesPerPart) parts in stock.
const machinesPerPart = 5

// MachineModel describes one purchasable machine.
type MachineModel struct {
	Name  string
	Price float64
	Eco   bool
}

// MachineCatalog lists the purchasable machine models.
var MachineCatalog = []MachineModel{
	{Name: "standard_washer", Price: 1200, Eco: false},
	{Name: "eco_washer", Price: 1800, Eco: true},
	{Name: "standard_dryer", Price: 1000, Eco: false},
	{Name: "eco_dryer", Price: 1500, Eco: true},
}

func machineModelByName(name string) (MachineModel, bool) {
	for _, m := range MachineCatalog {
		if m.Name == name {
			return m, true
		}
	}

	return MachineModel{}, false
}

type buySuppliesCommand struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// BuySupplies purchases inventory at the vendor's price, honoring any
// negotiated discount multiplier. It emits the funds transfer and the stock
// increase as two separate facts.
func BuySupplies(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[buySuppliesCommand](payload)
	if err != nil {
		return invalidPayload(ActionBuySupplies, err)
	}

	if cmd.Quantity <= 0 {
		return events.DomainEvents{events.BuildActionFailed(ActionBuySupplies, events.ReasonInvalidPayload, map[string]string{
			"quantity": strconv.Itoa(cmd.Quantity),
		})}
	}

	listPrice, err := svc.Vendor.GetPrice(cmd.Item, agg.AgentID)
	if err != nil {
		return events.DomainEvents{events.BuildActionFailed(ActionBuySupplies, events.ReasonMissingEntity, map[string]string{
			"item": cmd.Item,
		})}
	}

	unitCost := listPrice
	if multiplier, ok := agg.VendorDeals[cmd.Item]; ok {
		unitCost = listPrice * multiplier
	}

	total := unitCost * float64(cmd.Quantity)
	if agg.Balance() < total {
		return events.DomainEvents{events.BuildActionFailed(ActionBuySupplies, events.ReasonInsufficientFunds, map[string]string{
			"required":  formatMoney(total),
			"available": formatMoney(agg.Balance()),
		})}
	}

	return events.DomainEvents{
		events.BuildFundsTransferred(-total, events.CategorySupplies, "supplies: "+cmd.Item, cmd.Item),
		events.BuildSuppliesStocked(cmd.Item, cmd.Quantity, unitCost),
	}
}

type buyMachineCommand struct {
	Model string `json:"model"`
}

// BuyMachine purchases one machine from the catalog.
func BuyMachine(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[buyMachineCommand](payload)
	if err != nil {
		return invalidPayload(ActionBuyMachine, err)
	}

	model, ok := machineModelByName(cmd.Model)
	if !ok {
		return events.DomainEvents{events.BuildActionFailed(ActionBuyMachine, events.ReasonMissingEntity, map[string]string{
			"model": cmd.Model,
		})}
	}

	if agg.Balance() < model.Price {
		return events.DomainEvents{events.BuildActionFailed(ActionBuyMachine, events.ReasonInsufficientFunds, map[string]string{
			"required":  formatMoney(model.Price),
			"available": formatMoney(agg.Balance()),
		})}
	}

	machineID := svc.NewID()

	return events.DomainEvents{
		events.BuildFundsTransferred(-model.Price, events.CategoryEquipment, "machine: "+model.Name, machineID),
		events.BuildMachinePurchased(machineID, model.Name, model.Price, model.Eco),
	}
}

// MaintainMachines runs a maintenance pass over the whole fleet, consuming
// ceil(machineCount/5) machine parts from stock. A short stock fails with
// the needed and available counts in the details.
func MaintainMachines(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	machineCount := len(agg.Machines)
	if machineCount == 0 {
		return events.DomainEvents{events.BuildActionFailed(ActionMaintainMachines, events.ReasonMissingEntity, map[string]string{
			"machines": "0",
		})}
	}

	needed := (machineCount + machinesPerPart - 1) / machinesPerPart
	available := agg.SupplyCount(events.ItemMachineParts)

	if available < needed {
		return events.DomainEvents{events.BuildActionFailed(ActionMaintainMachines, events.ReasonInsufficientStock, map[string]string{
			"needed":    strconv.Itoa(needed),
			"available": strconv.Itoa(available),
		})}
	}

	return events.DomainEvents{
		events.BuildMachinesMaintained(machineCount, needed),
	}
}
