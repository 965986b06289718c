package writeback

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName  = "org.freedesktop.Tracker1.Writeback"
	busPath  = "/org/freedesktop/Tracker1/Writeback"
	busIface = "org.freedesktop.Tracker1.Writeback"
)

/*
DBusTransport exports a [Controller] on the session bus under
org.freedesktop.Tracker1.Writeback, the legacy transport named in
spec.md §6.2. Any equivalent RPC surface is acceptable per the
specification; this is the concrete choice, grounded on
github.com/godbus/dbus/v5 (other_examples/manifests/perkeep-perkeep and
moby-moby go.mod files).
*/
type DBusTransport struct {
	conn *dbus.Conn
	ctrl *Controller
}

/*
dbusHandler adapts [Controller]'s channel-based API to godbus's
reflection-based method export: each exported method's signature must
match the one godbus will call via D-Bus introspection.
*/
type dbusHandler struct {
	ctrl *Controller
}

/*
GetPid implements the GetPid method of org.freedesktop.Tracker1.Writeback.
*/
func (h *dbusHandler) GetPid() (int32, *dbus.Error) {
	return h.ctrl.GetPid(), nil
}

/*
PerformWriteback implements the PerformWriteback method of
org.freedesktop.Tracker1.Writeback.
*/
func (h *dbusHandler) PerformWriteback(subject string, rdfTypes []string, results [][]string) *dbus.Error {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, Row(r))
	}
	h.ctrl.PerformWriteback(subject, rdfTypes, rows)
	return nil
}

/*
CancelTasks implements the CancelTasks method of
org.freedesktop.Tracker1.Writeback.
*/
func (h *dbusHandler) CancelTasks(subjects []string) *dbus.Error {
	h.ctrl.CancelTasks(subjects)
	return nil
}

/*
NewDBusTransport connects to the session bus, requests busName and
exports ctrl's three operations (spec.md §6.2, §4.F.5). Returns
[ErrTransportInit] if the bus name is already owned.
*/
func NewDBusTransport(ctrl *Controller) (*DBusTransport, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, ErrTransportInit
	}

	handler := &dbusHandler{ctrl: ctrl}
	if err := conn.Export(handler, dbus.ObjectPath(busPath), busIface); err != nil {
		conn.Close()
		return nil, err
	}

	return &DBusTransport{conn: conn, ctrl: ctrl}, nil
}

/*
Close releases the bus name and closes the underlying connection
(spec.md §4.F.5: "unregisters the transport and destroys the storage
connection").
*/
func (t *DBusTransport) Close() error {
	if t == nil || t.conn == nil {
		return nil
	}
	_, _ = t.conn.ReleaseName(busName)
	return t.conn.Close()
}
