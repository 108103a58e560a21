// Package scenarios is the Go equivalent of the prototype's testcase.py:
// named, reusable module-graph builders exercising the engine end to end.
// Recovered from original_source/testcase.py, which spec.md's distillation
// dropped entirely.
package scenarios

import (
	"math/rand"

	"github.com/andrew-eldridge/simux/engine"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/modules"
	"github.com/andrew-eldridge/simux/resource"
	"github.com/andrew-eldridge/simux/simtime"
)

// Factory builds one named scenario's Environment, ready for
// engine.RunSimulation.
type Factory func(rng *rand.Rand) *engine.Environment

// Registry maps a scenario name to its Factory, for cmd/simux's --scenario
// flag and for tests that want to exercise every scenario uniformly.
var Registry = map[string]Factory{
	"single-source":            SingleSource,
	"single-server-queue":      SingleServerQueue,
	"duplicate-and-batch":      DuplicateAndBatch,
	"shared-server-rendezvous": SharedServerRendezvous,
	"shopping-district":        ShoppingDistrict,
}

// SingleSource is the prototype's testcase_1: a bare Create -> Dispose
// chain with an idle 3-capacity resource present but never seized.
func SingleSource(rng *rand.Rand) *engine.Environment {
	env := engine.NewEnvironment()
	env.AddResource(resource.New("Server", 3))

	counter := &idgen.Counter{}
	dispose := modules.NewDisposeModule("Test Dispose", 1)
	create := modules.NewCreateModule("Test Create", 0, dispose, "Test Entity",
		simtime.NewExpArrivalGenerator(1, rng), counter)

	env.AddArrival(create)
	return env
}

// SingleServerQueue is the prototype's testcase_2: a queue with exponential
// arrivals and service, Create -> Seize -> Delay -> Release -> Dispose
// against one resource of capacity 3.
func SingleServerQueue(rng *rand.Rand) *engine.Environment {
	env := engine.NewEnvironment()
	server := resource.New("Server", 3)
	env.AddResource(server)

	counter := &idgen.Counter{}
	dispose := modules.NewDisposeModule("Test Dispose", 4)
	release := modules.NewReleaseModule("Test Release", 3, dispose, server, 1)
	delay := modules.NewDelayModule("Test Delay", 2, release, simtime.NewExpDelayGenerator(1, rng), "")
	seize := modules.NewSeizeModule("Test Seize", 1, delay, server, 1)
	create := modules.NewCreateModule("Test Create", 0, seize, "Test",
		simtime.NewExpArrivalGenerator(1, rng), counter)

	env.AddArrival(create)
	return env
}

// DuplicateAndBatch is the prototype's testcase_3: entities are assigned a
// unique identifier, duplicated, delayed along two independent branches,
// and re-batched by that identifier.
func DuplicateAndBatch(rng *rand.Rand) *engine.Environment {
	env := engine.NewEnvironment()
	env.AddVariable("last_entity", 0)

	counter := &idgen.Counter{}

	batchDelay := modules.NewDelayModule("Delay 3", 6, modules.NewDisposeModule("Dispose 1", 7),
		simtime.NewTriaDelayGenerator(0, 3, rng), modules.NonValueAdded)
	batch := modules.NewBatchModule("Batch 1", 5, batchDelay, modules.BatchAttribute, 2, "entity_id", "Person Group", counter)

	delay1 := modules.NewDelayModule("Delay 1", 3, batch, simtime.NewExpDelayGenerator(0.5, rng), "")
	delay2 := modules.NewDelayModule("Delay 2", 4, batch, simtime.NewTriaDelayGenerator(0, 2, rng), "")
	dup := modules.NewDuplicateModule("Duplicate 1", 2, delay1, delay2, counter)

	assign := modules.NewAssignModule("Assign entity ID", 1, dup, []modules.Assignment{
		{Type: modules.AssignVariable, Name: "last_entity", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity"].(int) + 1
		}},
		{Type: modules.AssignAttribute, Name: "entity_id", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity"]
		}},
	})

	create := modules.NewCreateModule("Create Person", 0, assign, "Person",
		simtime.NewExpArrivalGenerator(1, rng), counter)

	env.AddArrival(create)
	return env
}

// SharedServerRendezvous is the prototype's testcase_4: as DuplicateAndBatch,
// but each duplicate branch seizes/delays/releases its own resource before
// the rendezvous batch re-seizes a shared resource.
func SharedServerRendezvous(rng *rand.Rand) *engine.Environment {
	env := engine.NewEnvironment()
	env.AddVariable("last_entity", 0)

	server1 := resource.New("Server 1", 3)
	server2 := resource.New("Server 2", 2)
	env.AddResource(server1)
	env.AddResource(server2)

	counter := &idgen.Counter{}

	dispose := modules.NewDisposeModule("Dispose 1", 10)
	releaseAgain := modules.NewReleaseModule("Release Server 1 Again", 9, dispose, server1, 1)
	delayAgain := modules.NewDelayModule("Delay 3", 8, releaseAgain, simtime.NewTriaDelayGenerator(0, 3, rng), modules.NonValueAdded)
	seizeAgain := modules.NewSeizeModule("Seize Server 1 Again", 7, delayAgain, server1, 1)
	batch := modules.NewBatchModule("Batch 1", 6, seizeAgain, modules.BatchAttribute, 2, "entity_id", "Person Group", counter)

	release1 := modules.NewReleaseModule("Release Server 1", 5, batch, server1, 1)
	delay1 := modules.NewDelayModule("Delay 1", 4, release1, simtime.NewExpDelayGenerator(1, rng), "")
	seize1 := modules.NewSeizeModule("Seize Server 1", 3, delay1, server1, 1)

	release2 := modules.NewReleaseModule("Release Server 2", 5, batch, server2, 1)
	delay2 := modules.NewDelayModule("Delay 2", 4, release2, simtime.NewTriaDelayGenerator(0, 2, rng), "")
	seize2 := modules.NewSeizeModule("Seize Server 2", 3, delay2, server2, 1)

	dup := modules.NewDuplicateModule("Duplicate 1", 2, seize1, seize2, counter)

	assign := modules.NewAssignModule("Assign entity ID", 1, dup, []modules.Assignment{
		{Type: modules.AssignVariable, Name: "last_entity", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity"].(int) + 1
		}},
		{Type: modules.AssignAttribute, Name: "entity_id", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity"]
		}},
	})

	create := modules.NewCreateModule("Create Person", 0, assign, "Person",
		simtime.NewExpArrivalGenerator(1, rng), counter)

	env.AddArrival(create)
	return env
}

// ShoppingDistrict is the prototype's testcase_5: couples are batched,
// driven to a shopping district, separated to run independent errands at
// one of two stores, then re-batched as a couple for a shared final
// checkout.
func ShoppingDistrict(rng *rand.Rand) *engine.Environment {
	env := engine.NewEnvironment()
	env.AddVariable("last_entity_ind", -1)

	clerk1 := resource.New("Clerk Store 1", 3)
	clerk2 := resource.New("Clerk Store 2", 2)
	env.AddResource(clerk1)
	env.AddResource(clerk2)

	counter := &idgen.Counter{}

	depart := modules.NewDisposeModule("Depart Shopping District", 13)
	releaseAgain := modules.NewReleaseModule("Release Store 1 Clerk Again", 12, depart, clerk1, 1)
	delayAgain := modules.NewDelayModule("Delay Store 1 Checkout Again", 11, releaseAgain, simtime.NewExpDelayGenerator(1, rng), modules.ValueAdded)
	seizeAgain := modules.NewSeizeModule("Seize Store 1 Clerk Again", 10, delayAgain, clerk1, 1)
	rebatch := modules.NewBatchModule("Re-Batch Couple", 9, seizeAgain, modules.BatchAttribute, 2, "couple_ind", "Couple", counter)

	release1 := modules.NewReleaseModule("Release Store 1 Clerk", 8, rebatch, clerk1, 1)
	delay1 := modules.NewDelayModule("Delay Store 1 Checkout", 7, release1, simtime.NewExpDelayGenerator(1, rng), modules.NonValueAdded)
	seize1 := modules.NewSeizeModule("Seize Store 1 Clerk", 6, delay1, clerk1, 1)

	release2 := modules.NewReleaseModule("Release Store 2 Clerk", 8, rebatch, clerk2, 1)
	delay2 := modules.NewDelayModule("Delay Store 2 Checkout", 7, release2, simtime.NewTriaDelayGenerator(1, 3.5, rng), modules.ValueAdded)
	seize2 := modules.NewSeizeModule("Seize Store 2 Clerk", 6, delay2, clerk2, 1)

	decide := modules.NewDecideTwoWayByConditionModule("Choose store to enter", 5, seize1, seize2,
		func(_ map[string]any, attr map[string]any) bool {
			return attr["going_to_store1"].(bool)
		})

	separate := modules.NewSeparateModule("Split up for errands", 4, decide)

	driveTime := 1 + rng.Float64()*2
	drive := modules.NewDelayModule("Drive to Shopping District", 3, separate,
		simtime.NewExpDelayGenerator(1/driveTime, rng), modules.ValueAdded)

	createCouple := modules.NewBatchModule("Create Couple", 2, drive, modules.BatchAttribute, 2, "couple_ind", "Couple", counter)

	assign := modules.NewAssignModule("Assign Errands", 1, createCouple, []modules.Assignment{
		{Type: modules.AssignVariable, Name: "last_entity_ind", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity_ind"].(int) + 1
		}},
		{Type: modules.AssignAttribute, Name: "couple_ind", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity_ind"].(int) / 2
		}},
		{Type: modules.AssignAttribute, Name: "going_to_store1", Handler: func(variables, _ map[string]any) any {
			return variables["last_entity_ind"].(int)%2 == 0
		}},
	})

	create := modules.NewCreateModule("Create Person", 0, assign, "Person",
		simtime.NewExpArrivalGenerator(3, rng), counter)

	env.AddArrival(create)
	return env
}
