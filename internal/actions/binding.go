package actions

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
)

const defaultMobileNode = "mn-1"

// SendBindingUpdate records a new pending binding for the configured
// mobile node.
func SendBindingUpdate(deps Deps) dispatchers.Action {
	return bind("send mobile binding update", deps, sendBindingUpdate)
}

func sendBindingUpdate(_ string, deps Deps) error {
	if deps.Store == nil {
		return errors.New("no binding store")
	}

	node, _ := deps.Get("mobile_node")
	if node == "" {
		node = defaultMobileNode
	}

	b, err := deps.Store.RecordUpdate(node)
	if err != nil {
		return fmt.Errorf("record update: %w", err)
	}

	deps.Logger.Info("actions: binding update %s seq=%d node=%s", b.ID, b.Sequence, b.MobileNode)
	_, _ = deps.Printf("%s %s %s\n",
		deps.Styler.Success("binding update sent"),
		deps.Styler.Muted(fmt.Sprintf("seq=%d", b.Sequence)),
		deps.Styler.Muted(b.ID))
	return nil
}

// SendBindingAck acknowledges the most recent pending binding.
func SendBindingAck(deps Deps) dispatchers.Action {
	return bind("send mobile binding ack", deps, sendBindingAck)
}

func sendBindingAck(_ string, deps Deps) error {
	if deps.Store == nil {
		return errors.New("no binding store")
	}

	b, err := deps.Store.AckLatest()
	if errors.Is(err, domain.ErrNoPendingBinding) {
		_, _ = deps.Printf("%s\n", deps.Styler.Warning("no pending binding to acknowledge"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("ack: %w", err)
	}

	deps.Logger.Info("actions: binding ack %s seq=%d", b.ID, b.Sequence)
	_, _ = deps.Printf("%s %s\n",
		deps.Styler.Success("binding acknowledged"),
		deps.Styler.Muted(fmt.Sprintf("seq=%d node=%s", b.Sequence, b.MobileNode)))
	return nil
}
