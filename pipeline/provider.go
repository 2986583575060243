// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoHALAccess is returned when a device provider does not expose raw HAL
// handles.
var ErrNoHALAccess = errors.New("pipeline: provider does not expose HAL types")

// FromProvider extracts the HAL device and queue from a shared GPU context.
//
// The engine receives its device from the host application rather than
// creating one, so GPU resources are shared across the whole stack. The
// provider must additionally expose HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, fmt.Errorf("pipeline: provider is nil")
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALAccess
	}

	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}

	return device, queue, nil
}
