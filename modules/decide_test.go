package modules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/modules"
)

func TestDecideTwoWayTrueBranch(t *testing.T) {
	var trueCalled, falseCalled bool
	trueNext := trackingModule{called: &trueCalled}
	falseNext := trackingModule{called: &falseCalled}
	decide := modules.NewDecideTwoWayByConditionModule("Decide", 0, trueNext, falseNext,
		func(_ map[string]any, attr map[string]any) bool {
			return attr["vip"] == true
		})

	state := kernel.NewState("run-1", nil)
	vip := entity.New(1, "Guest", 0)
	vip.Attr["vip"] = true
	state.InitEntity(vip.Ind, vip.Type)

	evs, err := decide.IngestEntity(vip, 1)
	require.NoError(t, err)
	require.Len(t, evs, 1)

	_, err = evs[0].Handler(evs[0], state)
	require.NoError(t, err)
	assert.True(t, trueCalled)
	assert.False(t, falseCalled)
}

func TestDecideTwoWayFalseBranch(t *testing.T) {
	var trueCalled, falseCalled bool
	trueNext := trackingModule{called: &trueCalled}
	falseNext := trackingModule{called: &falseCalled}
	decide := modules.NewDecideTwoWayByConditionModule("Decide", 0, trueNext, falseNext,
		func(_ map[string]any, attr map[string]any) bool {
			return attr["vip"] == true
		})

	state := kernel.NewState("run-1", nil)
	regular := entity.New(1, "Guest", 0)
	state.InitEntity(regular.Ind, regular.Type)

	evs, err := decide.IngestEntity(regular, 1)
	require.NoError(t, err)
	require.Len(t, evs, 1)

	_, err = evs[0].Handler(evs[0], state)
	require.NoError(t, err)
	assert.False(t, trueCalled)
	assert.True(t, falseCalled)
}

// trackingModule is a minimal kernel.IngestModule stub recording whether it
// was reached, used to assert which branch DecideTwoWayByConditionModule
// takes without depending on a concrete terminal module.
type trackingModule struct {
	called *bool
}

func (m trackingModule) Name() string   { return "tracking" }
func (m trackingModule) ModuleInd() int { return -1 }
func (m trackingModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	*m.called = true
	return nil, nil
}
