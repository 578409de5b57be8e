package definition

import (
	"testing"

	"github.com/gclaussn/go-bpmn-model/model"
	"github.com/stretchr/testify/assert"
)

func TestContainerBuilder(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		userTask := &model.UserTask{}
		userTask.Name = "A"

		// when
		assert.Nil(b.AddTransition(newTransition("AG", "A", "G")))
		assert.Nil(b.AddTransition(newTransition("GE", "G", "E")))
		assert.Nil(b.AddActivity(userTask))
		assert.Nil(b.AddGateway(newGateway("G", model.GatewayExclusive)))
		assert.Nil(b.AddEndEvent(newEndEvent("E")))

		c := mustBuild(t, b)

		// then
		assert.True(c.IsRoot())
		assert.Nil(c.ElementContainer())

		a, ok := c.FlowNodeByName("A").(*UserTask)
		assert.True(ok)
		assert.Equal(model.NodeUserTask, a.Type())
		assert.Equal(int64(3), a.Id())
		assert.True(a.IsStartable())

		g := c.Gateway("G")
		assert.NotNil(g)
		assert.True(g.IsExclusive())
		assert.False(g.IsParallelOrInclusive())

		transition := c.Transition("AG")
		assert.NotNil(transition)
		assert.Equal(int64(1), transition.Id())
		assert.Equal(a.Id(), transition.SourceId())
		assert.Equal(g.Id(), transition.TargetId())
		assert.False(transition.HasCondition())

		assert.Len(a.Outgoing(), 1)
		assert.Same(transition, a.Outgoing()[0])
		assert.Len(g.Incoming(), 1)
		assert.Same(transition, g.Incoming()[0])

		assert.Same(a, c.Source(transition))
		assert.Same(g, c.Target(transition))

		e := c.FlowNodeByName("E")
		assert.IsType(&EndEvent{}, e)
		assert.False(e.IsStartable())
		assert.False(e.HasOutgoingTransitions())
		assert.Same(c.Transition("GE"), e.Incoming()[0])

		assert.Len(c.FlowNodes(), 3)
		assert.Len(c.Activities(), 1)
		assert.Len(c.Gateways(), 1)
		assert.Len(c.EndEvents(), 1)
		assert.Len(c.Transitions(), 2)
	})

	t.Run("three indexes", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		b.AddActivity(newAutomaticTask("task"))
		b.AddGateway(newGateway("gateway", model.GatewayParallel))
		b.AddStartEvent(newStartEvent("start"))
		b.AddIntermediateCatchEvent(model.IntermediateCatchEvent{
			FlowNode:      model.FlowNode{Name: "catch"},
			CatchTriggers: model.CatchTriggers{Signal: &model.SignalTrigger{SignalName: "signal"}},
		})
		b.AddIntermediateThrowEvent(model.IntermediateThrowEvent{FlowNode: model.FlowNode{Name: "throw"}})
		b.AddEndEvent(newEndEvent("end"))

		// when
		c := mustBuild(t, b)

		// then
		assert.Len(c.FlowNodes(), 6)
		for _, flowNode := range c.FlowNodes() {
			assert.Same(flowNode, c.FlowNodeById(flowNode.Id()))
			assert.Same(flowNode, c.FlowNodeByName(flowNode.Name()))
		}

		assert.Len(c.Activities(), 1)
		assert.Len(c.Gateways(), 1)
		assert.Len(c.StartEvents(), 1)
		assert.Len(c.IntermediateCatchEvents(), 1)
		assert.Len(c.IntermediateThrowEvents(), 1)
		assert.Len(c.EndEvents(), 1)
	})

	t.Run("boundary events", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		interrupting := true
		nonInterrupting := false

		task := newAutomaticTask("task")
		task.BoundaryEvents = []model.BoundaryEvent{
			{
				FlowNode:      model.FlowNode{Name: "t1"},
				CatchTriggers: model.CatchTriggers{Timer: &model.TimerTrigger{TimerType: model.TimerDuration}},
				Interrupting:  &interrupting,
			},
			{
				FlowNode:      model.FlowNode{Name: "t2"},
				CatchTriggers: model.CatchTriggers{Timer: &model.TimerTrigger{TimerType: model.TimerCycle}},
				Interrupting:  &nonInterrupting,
			},
		}

		// when
		assert.Nil(b.AddActivity(task))

		c := mustBuild(t, b)

		// then
		activity := c.FlowNodeByName("task").(Activity)

		t1, err := activity.BoundaryEvent("t1")
		assert.Nil(err)
		assert.True(t1.IsInterrupting())
		assert.True(t1.IsBoundaryEvent())
		assert.Same(activity, t1.AttachedTo())
		assert.Equal(TriggerTimer, t1.Trigger().TriggerType())

		t2 := c.BoundaryEvent("t2")
		assert.NotNil(t2)
		assert.False(t2.IsInterrupting())

		assert.Same(t1, c.FlowNodeById(t1.Id()))
		assert.Same(t2, c.FlowNodeById(t2.Id()))
		assert.Same(t1, c.BoundaryEvent("t1"))

		assert.Equal([]*BoundaryEvent{t1, t2}, activity.BoundaryEvents())
		assert.Equal([]*BoundaryEvent{t1, t2}, c.BoundaryEvents())

		_, err = activity.BoundaryEvent("missing")
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorNotFound, engineErr.Type)
	})

	t.Run("duplicate flow node name", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		assert.Nil(b.AddStartEvent(newStartEvent("a")))

		// when
		err := b.AddEndEvent(newEndEvent("a"))

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorProcessModel, engineErr.Type)
		assert.Len(engineErr.Causes, 1)
		assert.Equal("/a", engineErr.Causes[0].Pointer)
		assert.Equal("element", engineErr.Causes[0].Type)
		assert.Equal("flow node name a is not unique", engineErr.Causes[0].Detail)

		assert.Len(b.container.flowNodes, 1)
		assert.IsType(&StartEvent{}, b.container.flowNodes[b.container.flowNodeByName["a"]])
		assert.Len(b.container.endEvents, 0)

		// when
		_, err = b.Build()

		// then
		assert.IsType(Error{}, err)

		engineErr = err.(Error)
		assert.Equal(ErrorProcessModel, engineErr.Type)
		assert.Len(engineErr.Causes, 1)
	})

	t.Run("duplicate flow node ID", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		assert.Nil(b.AddStartEvent(model.StartEvent{FlowNode: model.FlowNode{Id: 7, Name: "a"}}))

		// when
		err := b.AddEndEvent(model.EndEvent{FlowNode: model.FlowNode{Id: 7, Name: "b"}})

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Len(engineErr.Causes, 1)
		assert.Equal("flow node ID 7 is not unique", engineErr.Causes[0].Detail)

		assert.Nil(b.container.FlowNodeByName("b"))
	})

	t.Run("duplicate transition name", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		assert.Nil(b.AddTransition(newTransition("t", "a", "b")))

		// when
		err := b.AddTransition(newTransition("t", "b", "a"))

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Len(engineErr.Causes, 1)
		assert.Equal("/t", engineErr.Causes[0].Pointer)
		assert.Equal("transition", engineErr.Causes[0].Type)
	})

	t.Run("generated IDs", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t, func(o *Options) {
			o.IdOffset = 100
		})

		// when
		b.AddStartEvent(newStartEvent("a"))
		b.AddStartEvent(model.StartEvent{FlowNode: model.FlowNode{Id: 200, Name: "b"}})
		b.AddEndEvent(newEndEvent("c"))

		c := mustBuild(t, b)

		// then
		assert.Equal(int64(201), c.FlowNodeByName("a").Id())
		assert.Equal(int64(200), c.FlowNodeByName("b").Id())
		assert.Equal(int64(202), c.FlowNodeByName("c").Id())
	})

	t.Run("generated IDs do not collide with explicit IDs added later", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		g2 := newGateway("g2", model.GatewayParallel)
		g2.Id = 1

		t2 := newTransition("t2", "g1", "g2")
		t2.Id = 1

		// when
		assert.Nil(b.AddTransition(newTransition("t1", "g2", "g1")))
		assert.Nil(b.AddGateway(newGateway("g1", model.GatewayParallel)))
		assert.Nil(b.AddGateway(g2))
		assert.Nil(b.AddTransition(t2))

		c := mustBuild(t, b)

		// then
		g1 := c.FlowNodeByName("g1")
		assert.Equal(int64(3), g1.Id())
		assert.Equal(int64(1), c.FlowNodeByName("g2").Id())
		assert.Same(g1, c.FlowNodeById(3))

		assert.Equal(int64(2), c.Transition("t1").Id())
		assert.Equal(int64(1), c.Transition("t2").Id())
		assert.Equal(g1.Id(), c.Transition("t2").SourceId())
	})

	t.Run("generated IDs of sub processes do not collide with explicit IDs added later", func(t *testing.T) {
		assert := assert.New(t)

		// given
		subProcess := &model.SubProcess{
			ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Name: "sub"}},
			FlowElements: model.FlowElementContainer{
				Activities: model.ActivityList{newAutomaticTask("a")},
			},
		}

		b := mustCreateBuilder(t)

		// when
		assert.Nil(b.AddActivity(subProcess))
		assert.Nil(b.AddEndEvent(model.EndEvent{FlowNode: model.FlowNode{Id: 2, Name: "end"}}))

		c := mustBuild(t, b)

		// then
		sub := c.FlowNodeByName("sub").(*SubProcess)
		assert.Equal(int64(3), sub.Container().FlowNodeByName("a").Id())
		assert.Equal(int64(4), sub.Id())
		assert.Equal(int64(2), c.FlowNodeByName("end").Id())

		ids := make(map[int64]bool)
		c.Walk(func(_ []int64, flowNode FlowNode) bool {
			assert.False(ids[flowNode.Id()], "ID %d is not unique", flowNode.Id())
			ids[flowNode.Id()] = true
			return true
		})
		assert.Len(ids, 3)
	})

	t.Run("explicit ID is not unique", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		g1 := newGateway("g1", model.GatewayParallel)
		g1.Id = 1
		g2 := newGateway("g2", model.GatewayParallel)
		g2.Id = 1

		// when
		assert.Nil(b.AddGateway(g1))
		err := b.AddGateway(g2)

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorProcessModel, engineErr.Type)
		assert.Equal([]ErrorCause{
			{Pointer: "/g2", Type: "element", Detail: "flow node ID 1 is not unique"},
		}, engineErr.Causes)
	})

	t.Run("nil activity", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		// when
		err := b.AddActivity((*model.UserTask)(nil))

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorBug, engineErr.Type)
		assert.Equal("activity of type *model.UserTask is nil", engineErr.Detail)

		_, err = b.Build()
		assert.Equal(engineErr, err)
	})

	t.Run("start events interrupt only within event sub processes", func(t *testing.T) {
		assert := assert.New(t)

		// given
		nonInterrupting := false

		eventSubProcess := &model.SubProcess{
			ActivityBase:     model.ActivityBase{FlowNode: model.FlowNode{Name: "eventSub"}},
			TriggeredByEvent: true,
			FlowElements: model.FlowElementContainer{
				StartEvents: []model.StartEvent{
					{FlowNode: model.FlowNode{Name: "interrupting"}, CatchTriggers: model.CatchTriggers{Signal: &model.SignalTrigger{SignalName: "a"}}},
					{FlowNode: model.FlowNode{Name: "nonInterrupting"}, CatchTriggers: model.CatchTriggers{Signal: &model.SignalTrigger{SignalName: "b"}}, Interrupting: &nonInterrupting},
				},
			},
		}

		subProcess := &model.SubProcess{
			ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Name: "sub"}},
			FlowElements: model.FlowElementContainer{
				StartEvents: []model.StartEvent{newStartEvent("subStart")},
			},
		}

		b := mustCreateBuilder(t)
		b.AddStartEvent(newStartEvent("start"))
		b.AddActivity(eventSubProcess)
		b.AddActivity(subProcess)

		// when
		c := mustBuild(t, b)

		// then
		assert.False(c.FlowNodeByName("start").IsInterrupting())
		assert.False(c.FlowNodeByName("subStart").IsInterrupting())
		assert.True(c.FlowNodeByName("interrupting").IsInterrupting())
		assert.False(c.FlowNodeByName("nonInterrupting").IsInterrupting())
	})

	t.Run("invalid options", func(t *testing.T) {
		assert := assert.New(t)

		// when
		_, err := NewContainerBuilder(func(o *Options) {
			o.IdOffset = -1
		})

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorValidation, engineErr.Type)
	})

	t.Run("built builder", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddStartEvent(newStartEvent("a"))

		c := mustBuild(t, b)

		// when
		err := b.AddEndEvent(newEndEvent("b"))

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorBug, engineErr.Type)

		_, err = b.Build()
		assert.IsType(Error{}, err)

		assert.Len(c.FlowNodes(), 1)
	})

	t.Run("unsupported activity", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		// when
		err := b.AddActivity(&unsupportedActivity{})

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorBug, engineErr.Type)
		assert.Equal("activity of type *definition.unsupportedActivity is not supported", engineErr.Detail)

		assert.Equal(err, b.AddStartEvent(newStartEvent("a")))

		_, err = b.Build()
		assert.Equal(ErrorBug, err.(Error).Type)
	})

	t.Run("unresolved transition", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "a", "x"))
		b.AddTransition(newTransition("t2", "y", "a"))
		b.AddStartEvent(newStartEvent("a"))

		// when
		_, err := b.Build()

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorProcessModel, engineErr.Type)
		assert.Len(engineErr.Causes, 2)
		assert.Equal(ErrorCause{Pointer: "/t1", Type: "transition", Detail: "transition t1 has no target flow node x"}, engineErr.Causes[0])
		assert.Equal(ErrorCause{Pointer: "/t2", Type: "transition", Detail: "transition t2 has no source flow node y"}, engineErr.Causes[1])
	})

	t.Run("default transition", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "g", "a"))
		b.AddTransition(newTransition("t2", "g", "b"))

		gateway := newGateway("g", model.GatewayExclusive)
		gateway.DefaultTransition = "t2"

		b.AddGateway(gateway)
		b.AddEndEvent(newEndEvent("a"))
		b.AddEndEvent(newEndEvent("b"))

		// when
		c := mustBuild(t, b)

		// then
		g := c.Gateway("g")
		assert.Same(c.Transition("t2"), g.DefaultTransition())
		assert.Nil(c.FlowNodeByName("a").DefaultTransition())
	})

	t.Run("default transition is not outgoing", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "a", "g"))

		gateway := newGateway("g", model.GatewayExclusive)
		gateway.DefaultTransition = "t1"

		b.AddStartEvent(newStartEvent("a"))
		b.AddGateway(gateway)

		// when
		_, err := b.Build()

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Len(engineErr.Causes, 1)
		assert.Equal("/g", engineErr.Causes[0].Pointer)
		assert.Equal("flow node g has no outgoing default transition t1", engineErr.Causes[0].Detail)
	})

	t.Run("explicit transition order", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "a", "c"))
		b.AddTransition(newTransition("t2", "b", "c"))
		b.AddStartEvent(newStartEvent("a"))
		b.AddStartEvent(newStartEvent("b"))

		join := newGateway("c", model.GatewayParallel)
		join.Incoming = []string{"t2", "t1"}

		b.AddGateway(join)

		// when
		c := mustBuild(t, b)

		// then
		g := c.Gateway("c")
		assert.Equal(1, g.TransitionIndex("t2"))
		assert.Equal(2, g.TransitionIndex("t1"))
		assert.Equal(NoTransitionIndex, g.TransitionIndex("t3"))
	})

	t.Run("derived transition order", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "a", "c"))
		b.AddTransition(newTransition("t2", "b", "c"))
		b.AddStartEvent(newStartEvent("a"))
		b.AddStartEvent(newStartEvent("b"))
		b.AddGateway(newGateway("c", model.GatewayParallel))

		// when
		c := mustBuild(t, b)

		// then
		g := c.Gateway("c")
		assert.Equal(1, g.TransitionIndex("t1"))
		assert.Equal(2, g.TransitionIndex("t2"))
		assert.True(g.IsParallelOrInclusive())
		assert.False(g.IsExclusive())
	})

	t.Run("explicit transitions are incomplete", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddTransition(newTransition("t1", "a", "c"))
		b.AddTransition(newTransition("t2", "b", "c"))
		b.AddStartEvent(newStartEvent("a"))
		b.AddStartEvent(newStartEvent("b"))

		join := newGateway("c", model.GatewayParallel)
		join.Incoming = []string{"t1"}

		b.AddGateway(join)

		// when
		_, err := b.Build()

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Len(engineErr.Causes, 1)
		assert.Equal("/t2", engineErr.Causes[0].Pointer)
		assert.Equal("transition t2 is not an incoming transition of flow node c", engineErr.Causes[0].Detail)
	})

	t.Run("contains inclusive gateway", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		// when
		b.AddGateway(newGateway("parallel", model.GatewayParallel))

		// then
		assert.False(b.container.ContainsInclusiveGateway())

		// when
		b.AddGateway(newGateway("inclusive", model.GatewayInclusive))
		b.AddGateway(newGateway("exclusive", model.GatewayExclusive))

		// then
		assert.True(b.container.ContainsInclusiveGateway())

		c := mustBuild(t, b)
		assert.True(c.ContainsInclusiveGateway())
		assert.True(c.Gateway("inclusive").IsParallelOrInclusive())
	})

	t.Run("connectors", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		// when
		assert.Nil(b.AddConnector(model.Connector{Name: "a", ConnectorId: "email", Version: "1.0", ActivationEvent: model.ConnectorOnEnter}))
		assert.Nil(b.AddConnector(model.Connector{Name: "b", ConnectorId: "rest", Version: "1.0", ActivationEvent: model.ConnectorOnFinish}))
		assert.Nil(b.AddConnector(model.Connector{Name: "c", ConnectorId: "rest", Version: "1.0", ActivationEvent: model.ConnectorOnEnter, FailAction: model.FailIgnore}))

		c := mustBuild(t, b)

		// then
		assert.True(c.HasConnectors())
		assert.Len(c.Connectors(), 3)

		onEnter := c.ConnectorsByEvent(model.ConnectorOnEnter)
		assert.Len(onEnter, 2)
		assert.Equal("a", onEnter[0].Name())
		assert.Equal("c", onEnter[1].Name())

		onFinish := c.ConnectorsByEvent(model.ConnectorOnFinish)
		assert.Len(onFinish, 1)
		assert.Same(c.Connector("b"), onFinish[0])

		assert.Equal(model.FailFail, c.Connector("a").FailAction())
		assert.Equal(model.FailIgnore, c.Connector("c").FailAction())
		assert.Nil(c.Connector("d"))
	})

	t.Run("duplicate connector name", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)
		b.AddConnector(model.Connector{Name: "a", ConnectorId: "email", Version: "1.0", ActivationEvent: model.ConnectorOnEnter})

		// when
		err := b.AddConnector(model.Connector{Name: "a", ConnectorId: "rest", Version: "1.0", ActivationEvent: model.ConnectorOnFinish})

		// then
		assert.IsType(Error{}, err)

		engineErr := err.(Error)
		assert.Equal(ErrorProcessModel, engineErr.Type)
		assert.Equal("connector", engineErr.Causes[0].Type)
		assert.Len(b.container.connectors, 1)
	})

	t.Run("triggers", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		b.AddStartEvent(model.StartEvent{
			FlowNode: model.FlowNode{Name: "messageStart"},
			CatchTriggers: model.CatchTriggers{Message: &model.MessageTrigger{
				MessageName: "order",
				Correlations: []model.Correlation{
					{Key: model.Expression{Type: model.ExpressionConstant, Content: "orderId"}, Value: model.Expression{Type: model.ExpressionVariable, Content: "a"}},
					{Key: model.Expression{Type: model.ExpressionConstant, Content: "orderId"}, Value: model.Expression{Type: model.ExpressionVariable, Content: "b"}},
				},
			}},
		})
		b.AddIntermediateThrowEvent(model.IntermediateThrowEvent{
			FlowNode:      model.FlowNode{Name: "signalThrow"},
			ThrowTriggers: model.ThrowTriggers{Signal: &model.ThrowSignalTrigger{SignalName: "signal"}},
		})
		b.AddEndEvent(model.EndEvent{
			FlowNode:      model.FlowNode{Name: "terminateEnd"},
			ThrowTriggers: model.ThrowTriggers{Terminate: true},
		})
		b.AddEndEvent(model.EndEvent{
			FlowNode:      model.FlowNode{Name: "errorEnd"},
			ThrowTriggers: model.ThrowTriggers{Error: &model.ThrowErrorTrigger{ErrorCode: "E1"}},
		})
		b.AddEndEvent(newEndEvent("noneEnd"))

		// when
		c := mustBuild(t, b)

		// then
		messageStart := c.FlowNodeByName("messageStart").(*StartEvent)
		messageTrigger, ok := messageStart.Trigger().(*MessageTrigger)
		assert.True(ok)
		assert.Equal("order", messageTrigger.MessageName())
		assert.False(messageStart.IsInterrupting()) // not part of an event sub process

		correlations := messageTrigger.Correlations()
		assert.Len(correlations, 2)
		assert.Equal("orderId", correlations[0].Key.Content())
		assert.Equal("a", correlations[0].Value.Content())
		assert.Equal("orderId", correlations[1].Key.Content())
		assert.Equal("b", correlations[1].Value.Content())

		signalThrow := c.FlowNodeByName("signalThrow").(*IntermediateThrowEvent)
		assert.Equal(TriggerSignal, signalThrow.Trigger().TriggerType())

		terminateEnd := c.FlowNodeByName("terminateEnd").(*EndEvent)
		assert.IsType(&TerminateTrigger{}, terminateEnd.Trigger())

		errorEnd := c.FlowNodeByName("errorEnd").(*EndEvent)
		assert.Equal("E1", errorEnd.Trigger().(*ThrowErrorTrigger).ErrorCode())

		noneEnd := c.FlowNodeByName("noneEnd").(*EndEvent)
		assert.Nil(noneEnd.Trigger())
	})

	t.Run("invalid triggers", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		// when
		err1 := b.AddStartEvent(model.StartEvent{
			FlowNode: model.FlowNode{Name: "a"},
			CatchTriggers: model.CatchTriggers{
				Message: &model.MessageTrigger{MessageName: "message"},
				Signal:  &model.SignalTrigger{SignalName: "signal"},
			},
		})
		err2 := b.AddIntermediateCatchEvent(model.IntermediateCatchEvent{
			FlowNode:      model.FlowNode{Name: "b"},
			CatchTriggers: model.CatchTriggers{Error: &model.ErrorTrigger{}},
		})
		err3 := b.AddIntermediateThrowEvent(model.IntermediateThrowEvent{
			FlowNode:      model.FlowNode{Name: "c"},
			ThrowTriggers: model.ThrowTriggers{Terminate: true},
		})
		err4 := b.AddIntermediateCatchEvent(model.IntermediateCatchEvent{FlowNode: model.FlowNode{Name: "d"}})

		// then
		assert.Equal("event has 2 triggers, but only one is allowed", err1.(Error).Causes[0].Detail)
		assert.Equal("error_event", err2.(Error).Causes[0].Type)
		assert.Equal("terminate trigger is only allowed for end events", err3.(Error).Causes[0].Detail)
		assert.Equal("intermediate catch event d has no trigger", err4.(Error).Causes[0].Detail)

		_, err := b.Build()
		assert.Len(err.(Error).Causes, 4)
	})

	t.Run("loop characteristics", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		standardLoop := newAutomaticTask("standardLoop")
		standardLoop.StandardLoop = &model.StandardLoop{
			Condition:  &model.Expression{Type: model.ExpressionCondition, Content: "count < 3"},
			TestBefore: true,
		}

		multiInstance := newAutomaticTask("multiInstance")
		multiInstance.MultiInstance = &model.MultiInstance{
			Sequential:    true,
			LoopDataInput: "items",
			DataInputItem: "item",
		}

		both := newAutomaticTask("both")
		both.StandardLoop = &model.StandardLoop{}
		both.MultiInstance = &model.MultiInstance{}

		// when
		assert.Nil(b.AddActivity(standardLoop))
		assert.Nil(b.AddActivity(multiInstance))
		err := b.AddActivity(both)

		// then
		assert.IsType(Error{}, err)
		assert.Equal("activity both has a standard loop and multi instance characteristics", err.(Error).Causes[0].Detail)

		c := b.container

		loop, ok := c.FlowNodeByName("standardLoop").(Activity).LoopCharacteristics().(*StandardLoop)
		assert.True(ok)
		assert.True(loop.TestBefore())
		assert.Equal("count < 3", loop.Condition().Content())
		assert.True(loop.LoopMax().IsZero())

		multiInstanceLoop, ok := c.FlowNodeByName("multiInstance").(Activity).LoopCharacteristics().(*MultiInstanceLoop)
		assert.True(ok)
		assert.True(multiInstanceLoop.IsSequential())
		assert.Equal("items", multiInstanceLoop.LoopDataInput())
		assert.Equal("item", multiInstanceLoop.DataInputItem())

		assert.Nil(c.FlowNodeByName("both").(Activity).LoopCharacteristics())
	})

	t.Run("activities", func(t *testing.T) {
		assert := assert.New(t)

		// given
		b := mustCreateBuilder(t)

		userTask := &model.UserTask{}
		userTask.Name = "userTask"
		userTask.ActorName = "employee"
		userTask.Priority = model.PriorityHighest
		userTask.ExpectedDuration = 1500
		userTask.Contract = &model.Contract{
			Inputs: []model.Input{
				{Name: "amount", Type: model.InputDecimal},
				{Name: "address", Inputs: []model.Input{{Name: "city", Type: model.InputText}}},
			},
			Constraints: []model.Constraint{{Name: "positive", Expression: "amount > 0", InputNames: []string{"amount"}}},
		}

		manualTask := &model.ManualTask{}
		manualTask.Name = "manualTask"
		manualTask.UserFilter = &model.UserFilter{Name: "manager", FilterId: "manager-filter", Version: "1.0"}

		receiveTask := &model.ReceiveTask{Message: &model.MessageTrigger{MessageName: "payment"}}
		receiveTask.Name = "receiveTask"

		sendTask := &model.SendTask{Message: &model.ThrowMessageTrigger{
			MessageName:   "invoice",
			TargetProcess: &model.Expression{Type: model.ExpressionConstant, Content: "billing"},
			Content:       []model.MessageContent{{Name: "amount", Value: model.Expression{Type: model.ExpressionVariable, Content: "amount"}}},
		}}
		sendTask.Name = "sendTask"

		callActivity := &model.CallActivity{CallableElement: &model.Expression{Type: model.ExpressionConstant, Content: "child"}}
		callActivity.Name = "callActivity"
		callActivity.DataInputOperations = []model.Operation{{
			LeftOperand:  model.LeftOperand{Name: "input", Type: model.LeftOperandData},
			Type:         model.OperationAssignment,
			RightOperand: &model.Expression{Type: model.ExpressionVariable, Content: "amount"},
		}}

		// when
		assert.Nil(b.AddActivity(userTask))
		assert.Nil(b.AddActivity(manualTask))
		assert.Nil(b.AddActivity(receiveTask))
		assert.Nil(b.AddActivity(sendTask))
		assert.Nil(b.AddActivity(callActivity))

		c := mustBuild(t, b)

		// then
		assert.Len(c.Activities(), 5)

		u := c.FlowNodeByName("userTask").(*UserTask)
		assert.Equal("employee", u.ActorName())
		assert.Equal(model.PriorityHighest, u.Priority())
		assert.Equal(int64(1500), u.ExpectedDuration().Milliseconds())
		assert.Len(u.Contract().Inputs(), 2)
		assert.IsType(&SimpleInput{}, u.Contract().Input("amount"))
		assert.Equal(model.InputDecimal, u.Contract().Input("amount").(*SimpleInput).Type())
		assert.Len(u.Contract().Input("address").(*ComplexInput).Inputs(), 1)
		assert.Nil(u.Contract().Input("missing"))
		assert.Equal(model.ConstraintCustom, u.Contract().Constraints()[0].Type())
		assert.Equal([]string{"amount"}, u.Contract().Constraints()[0].InputNames())

		var humanTask HumanTask = c.FlowNodeByName("manualTask").(*ManualTask)
		userFilter, ok := humanTask.UserFilter()
		assert.True(ok)
		assert.Equal("manager-filter", userFilter.FilterId)
		assert.Equal(model.NodeManualTask, humanTask.Type())

		userFilter.FilterId = "mutated"
		userFilter, _ = humanTask.UserFilter()
		assert.Equal("manager-filter", userFilter.FilterId)

		_, ok = u.UserFilter()
		assert.False(ok)

		r := c.FlowNodeByName("receiveTask").(*ReceiveTask)
		assert.Equal("payment", r.Trigger().MessageName())

		s := c.FlowNodeByName("sendTask").(*SendTask)
		assert.Equal("invoice", s.Trigger().MessageName())
		assert.Equal("billing", s.Trigger().TargetProcess().Content())
		assert.True(s.Trigger().TargetProcessVersion().IsZero())
		assert.Len(s.Trigger().Content(), 1)

		a := c.FlowNodeByName("callActivity").(*CallActivity)
		assert.Equal("child", a.CallableElement().Content())
		assert.True(a.CallableElementVersion().IsZero())
		assert.Equal(model.CallableProcess, a.CallableElementType())
		assert.Len(a.DataInputOperations(), 1)
		assert.Equal("input", a.DataInputOperations()[0].LeftOperand.Name)
		assert.Equal("amount", a.DataInputOperations()[0].RightOperand.Content())
	})
}
