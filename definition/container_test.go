package definition

import (
	"testing"

	"github.com/gclaussn/go-bpmn-model/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowElementContainer(t *testing.T) {
	process := mustCreateProcess(t, mustDecodeProcess(t, "nested.yaml"))
	c := process.Container()

	outer := c.FlowNodeByName("outer").(*SubProcess)
	inner := outer.Container().FlowNodeByName("inner").(*SubProcess)
	sibling := c.FlowNodeByName("sibling").(*SubProcess)

	t.Run("containers", func(t *testing.T) {
		assert := assert.New(t)

		assert.True(c.IsRoot())
		assert.Equal(process, c.ElementContainer())

		assert.False(outer.Container().IsRoot())
		assert.Equal(outer, outer.Container().ElementContainer())

		assert.Equal([]*FlowElementContainer{outer.Container(), sibling.Container()}, c.SubProcessContainers())
		assert.Equal([]*FlowElementContainer{inner.Container()}, outer.Container().SubProcessContainers())
		assert.Empty(inner.Container().SubProcessContainers())
	})

	t.Run("flow node by name searches local container first", func(t *testing.T) {
		assert := assert.New(t)

		// when
		flowNode := outer.Container().FlowNodeByName("task")

		// then
		assert.Equal(model.NodeAutomaticTask, flowNode.Type())
		assert.NotEqual(inner.Container().FlowNodeByName("task"), flowNode)
	})

	t.Run("flow node by name searches sub processes in insertion order", func(t *testing.T) {
		assert := assert.New(t)

		// when
		flowNode := c.FlowNodeByName("task")

		// then
		assert.NotNil(flowNode)
		assert.Equal(outer.Container().FlowNodes()[0], flowNode)
		assert.Equal(model.NodeAutomaticTask, flowNode.Type())

		assert.Equal(model.NodeManualTask, inner.Container().FlowNodeByName("task").Type())
	})

	t.Run("flow node by name is recursive", func(t *testing.T) {
		assert := assert.New(t)

		flowNode := c.FlowNodeByName("deepest")
		assert.NotNil(flowNode)
		assert.Equal(flowNode, inner.Container().FlowNodeByName("deepest"))

		assert.Nil(c.FlowNodeByName("missing"))
		assert.Nil(inner.Container().FlowNodeByName("start")) // parent containers are not searched
	})

	t.Run("flow node by ID is recursive", func(t *testing.T) {
		assert := assert.New(t)

		deepest := inner.Container().FlowNodeByName("deepest")

		assert.Equal(deepest, c.FlowNodeById(deepest.Id()))
		assert.Equal(deepest, outer.Container().FlowNodeById(deepest.Id()))
		assert.Nil(sibling.Container().FlowNodeById(deepest.Id()))
		assert.Nil(c.FlowNodeById(-1))
	})

	t.Run("IDs are unique across containers", func(t *testing.T) {
		assert := assert.New(t)

		ids := make(map[int64]bool)
		c.Walk(func(_ []int64, flowNode FlowNode) bool {
			assert.False(ids[flowNode.Id()], "ID %d is not unique", flowNode.Id())
			ids[flowNode.Id()] = true
			return true
		})

		assert.Len(ids, 17)
	})

	t.Run("transition by name", func(t *testing.T) {
		assert := assert.New(t)

		// local first
		t1 := c.Transition("t1")
		assert.NotNil(t1)
		assert.Equal("start", c.Source(t1).Name())
		assert.Equal("fork", c.Target(t1).Name())

		// recursive
		t3 := inner.Container().Transition("t3")
		assert.Equal("deepest", inner.Container().Source(t3).Name())
		assert.Equal(t3, outer.Container().FlowNodeByName("inner").(*SubProcess).Container().Transition("t3"))

		assert.Nil(c.Transition("t7"))
	})

	t.Run("source and target are local", func(t *testing.T) {
		assert := assert.New(t)

		transition := outer.Container().Transition("t1")
		assert.Nil(c.Source(transition))
		assert.Nil(c.Target(transition))
		assert.Equal("outerStart", outer.Container().Source(transition).Name())
	})

	t.Run("gateway", func(t *testing.T) {
		assert := assert.New(t)

		fork := c.Gateway("fork")
		assert.NotNil(fork)
		assert.Equal(model.GatewayParallel, fork.GatewayType())
		assert.True(fork.IsParallelOrInclusive())
		assert.False(fork.IsExclusive())

		assert.Len(fork.Outgoing(), 2)
		assert.Equal("t2", fork.Outgoing()[0].Name())
		assert.Equal("t3", fork.Outgoing()[1].Name())

		assert.Nil(c.Gateway("start")) // not a gateway
		assert.Nil(c.Gateway("missing"))
	})

	t.Run("connector is local", func(t *testing.T) {
		assert := assert.New(t)

		assert.Nil(c.Connector("trace"))
		assert.False(c.HasConnectors())

		connector := outer.Container().Connector("trace")
		assert.NotNil(connector)
		assert.Equal("tracer", connector.ConnectorId())
		assert.True(outer.Container().HasConnectors())
		assert.Len(outer.Container().ConnectorsByEvent(model.ConnectorOnEnter), 1)
		assert.Empty(outer.Container().ConnectorsByEvent(model.ConnectorOnFinish))
	})

	t.Run("enumerations", func(t *testing.T) {
		assert := assert.New(t)

		assert.Len(c.FlowNodes(), 6)
		assert.Len(c.Activities(), 2)
		assert.Len(c.Gateways(), 2)
		assert.Len(c.StartEvents(), 1)
		assert.Len(c.EndEvents(), 1)
		assert.Empty(c.IntermediateCatchEvents())
		assert.Empty(c.IntermediateThrowEvents())
		assert.Empty(c.BoundaryEvents())
		assert.Len(c.Transitions(), 6)

		// activities before gateways before events
		names := make([]string, 0, 6)
		for _, flowNode := range c.FlowNodes() {
			names = append(names, flowNode.Name())
		}
		assert.Equal([]string{"outer", "sibling", "fork", "join", "start", "end"}, names)
	})

	t.Run("enumerations return copies", func(t *testing.T) {
		assert := assert.New(t)

		// when
		flowNodes := c.FlowNodes()
		flowNodes[0] = nil

		transitions := c.Transitions()
		transitions[0] = nil

		// then
		assert.NotNil(c.FlowNodes()[0])
		assert.NotNil(c.Transitions()[0])
	})

	t.Run("walk", func(t *testing.T) {
		assert := assert.New(t)

		var names []string
		var paths [][]int64

		completed := c.Walk(func(path []int64, flowNode FlowNode) bool {
			names = append(names, flowNode.Name())
			paths = append(paths, append([]int64(nil), path...))
			return true
		})

		assert.True(completed)
		assert.Equal([]string{
			"outer", "sibling", "fork", "join", "start", "end",
			"task", "inner", "outerStart", "outerEnd",
			"task", "deepest", "innerStart", "innerEnd",
			"task", "siblingStart", "siblingEnd",
		}, names)

		assert.Empty(paths[0])
		assert.Equal([]int64{outer.Id()}, paths[6])
		assert.Equal([]int64{outer.Id(), inner.Id()}, paths[10])
		assert.Equal([]int64{sibling.Id()}, paths[14])
	})

	t.Run("walk stops", func(t *testing.T) {
		assert := assert.New(t)

		var n int
		completed := c.Walk(func(_ []int64, flowNode FlowNode) bool {
			n++
			return flowNode.Name() != "inner"
		})

		assert.False(completed)
		assert.Equal(8, n)
	})

	t.Run("ref and resolve", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)

		// given
		manualTask := inner.Container().FlowNodeByName("task")

		// when
		ref, ok := c.Ref(manualTask.Id())
		require.True(ok)

		// then
		assert.Equal(FlowNodeRef{Path: []int64{outer.Id(), inner.Id()}, Id: manualTask.Id()}, ref)

		flowNode, err := c.Resolve(ref)
		require.NoError(err)
		assert.Equal(manualTask, flowNode)

		// root node
		ref, ok = c.Ref(outer.Id())
		require.True(ok)
		assert.Empty(ref.Path)

		flowNode, err = c.Resolve(ref)
		require.NoError(err)
		assert.Equal(outer, flowNode)

		_, ok = c.Ref(-1)
		assert.False(ok)
	})

	t.Run("resolve returns error when path is invalid", func(t *testing.T) {
		assert := assert.New(t)

		fork := c.FlowNodeByName("fork")

		_, err := c.Resolve(FlowNodeRef{Path: []int64{fork.Id()}, Id: 1})
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorNotFound, engineErr.Type)
		assert.Contains(engineErr.Detail, "is not a sub process")
	})

	t.Run("resolve returns error when flow node is not part of addressed container", func(t *testing.T) {
		assert := assert.New(t)

		deepest := inner.Container().FlowNodeByName("deepest")

		_, err := c.Resolve(FlowNodeRef{Path: []int64{outer.Id()}, Id: deepest.Id()})
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorNotFound, engineErr.Type)
		assert.Contains(engineErr.Detail, "does not exist")
	})
}

func TestFlowElementContainerDuplicateIds(t *testing.T) {
	assert := assert.New(t)

	// given
	subProcess := &model.SubProcess{
		ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Id: 1, Name: "sub"}},
		FlowElements: model.FlowElementContainer{
			Activities: model.ActivityList{
				&model.AutomaticTask{ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Id: 2, Name: "a"}}},
			},
		},
	}

	b := mustCreateBuilder(t)
	assert.NoError(b.AddActivity(subProcess))
	assert.NoError(b.AddActivity(&model.AutomaticTask{ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Id: 2, Name: "b"}}}))

	// when
	c := mustBuild(t, b)

	// then local match wins
	assert.Equal("b", c.FlowNodeById(2).Name())

	nested := c.FlowNodeByName("sub").(*SubProcess).Container()
	assert.Equal("a", nested.FlowNodeById(2).Name())
}
