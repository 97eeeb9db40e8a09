package adb

import (
	"context"
	"strings"
)

// Device describes one entry of the adb device list.
type Device struct {
	Serial string // Device serial number.
	State  string // Connection state: device, offline, unauthorized.
	Model  string // Model name from the long listing, if present.
}

// ListDevices returns the devices currently known to the adb server.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	raw, err := c.Run(ctx, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return parseDevices(raw), nil
}

// parseDevices parses `adb devices -l` output. The first line is a header;
// each following non-empty line is "<serial> <state> [key:value ...]".
func parseDevices(raw string) []Device {
	var devices []Device
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if i == 0 || line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{Serial: fields[0], State: fields[1]}
		for _, field := range fields[2:] {
			if model, ok := strings.CutPrefix(field, "model:"); ok {
				d.Model = model
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// ListPackages returns the package names installed on the device.
func (c *Client) ListPackages(ctx context.Context, deviceID string) ([]string, error) {
	raw, err := c.RunDevice(ctx, deviceID, "shell", "pm", "list", "packages")
	if err != nil {
		return nil, err
	}
	return parsePackages(raw), nil
}

// parsePackages parses `pm list packages` output, one "package:<name>" per line.
func parsePackages(raw string) []string {
	var packages []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "package:"); ok && name != "" {
			packages = append(packages, name)
		}
	}
	return packages
}
