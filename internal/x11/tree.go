package x11

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/reminiscence/internal/window"
)

var errEmptyReply = errors.New("empty reply")

// Tree answers window-hierarchy queries against a live X server.
type Tree struct {
	conn *Connection

	// Set when the _NET_WM_NAME fallback is enabled.
	netWMName  xproto.Atom
	utf8String xproto.Atom
}

var _ window.Tree = (*Tree)(nil)

// NewTree wraps conn. With netWMNameFallback, windows lacking WM_NAME are
// also checked for _NET_WM_NAME.
func NewTree(conn *Connection, netWMNameFallback bool) (*Tree, error) {
	t := &Tree{conn: conn}
	if !netWMNameFallback {
		return t, nil
	}

	var err error
	if t.netWMName, err = xprop.Atm(conn.XUtil, "_NET_WM_NAME"); err != nil {
		return nil, fmt.Errorf("failed to intern _NET_WM_NAME: %w", err)
	}
	if t.utf8String, err = xprop.Atm(conn.XUtil, "UTF8_STRING"); err != nil {
		return nil, fmt.Errorf("failed to intern UTF8_STRING: %w", err)
	}
	return t, nil
}

func (t *Tree) Root() window.ID {
	return window.ID(t.conn.Root)
}

func (t *Tree) Children(w window.ID) ([]window.ID, error) {
	reply, err := xproto.QueryTree(t.conn.XUtil.Conn(), xproto.Window(w)).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errEmptyReply
	}

	children := make([]window.ID, len(reply.Children))
	for i, child := range reply.Children {
		children[i] = window.ID(child)
	}
	return children, nil
}

func (t *Tree) Viewable(w window.ID) (bool, error) {
	attr, err := xproto.GetWindowAttributes(t.conn.XUtil.Conn(), xproto.Window(w)).Reply()
	if err != nil {
		return false, err
	}
	if attr == nil {
		return false, errEmptyReply
	}
	return attr.MapState == xproto.MapStateViewable, nil
}

// Name returns WM_NAME (type STRING), falling back to _NET_WM_NAME
// (type UTF8_STRING) when enabled.
func (t *Tree) Name(w window.ID) ([]byte, error) {
	raw, err := t.property(w, xproto.AtomWmName, xproto.AtomString)
	if err != nil || len(raw) > 0 || t.netWMName == 0 {
		return raw, err
	}
	return t.property(w, t.netWMName, t.utf8String)
}

func (t *Tree) Geometry(w window.ID) (window.Geometry, error) {
	geom, err := xproto.GetGeometry(t.conn.XUtil.Conn(), xproto.Drawable(w)).Reply()
	if err != nil {
		return window.Geometry{}, err
	}
	if geom == nil {
		return window.Geometry{}, errEmptyReply
	}
	return window.Geometry{
		X:      int(geom.X),
		Y:      int(geom.Y),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

func (t *Tree) property(w window.ID, prop, typ xproto.Atom) ([]byte, error) {
	reply, err := xproto.GetProperty(t.conn.XUtil.Conn(), false, xproto.Window(w), prop, typ, 0, math.MaxUint32).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errEmptyReply
	}
	if reply.ValueLen == 0 {
		return nil, nil
	}
	return reply.Value, nil
}
