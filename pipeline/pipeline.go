// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline compiles filter compute shaders and dispatches them
// against encoded parameter blocks.
//
// A FilterPipeline owns one compiled shader and its layout objects. Each
// Dispatch binds the caller's encoded uniform block alongside source,
// secondary, and output pixel buffers, submits a single compute pass, and
// waits for completion. Pixel data crosses the boundary as tightly packed
// RGBA bytes; the shader indexes them as u32 texels.
package pipeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	coreimage "github.com/1amageek/OpenCoreImage-sub001"
)

// Pipeline errors.
var (
	// ErrNilDevice is returned when device or queue is nil.
	ErrNilDevice = errors.New("pipeline: device and queue are required")

	// ErrEmptyShader is returned when the WGSL source is empty.
	ErrEmptyShader = errors.New("pipeline: shader source is empty")

	// ErrNotInitialized is returned when dispatching on a destroyed pipeline.
	ErrNotInitialized = errors.New("pipeline: not initialized")

	// ErrEmptyDispatch is returned when a dispatch carries no pixels.
	ErrEmptyDispatch = errors.New("pipeline: dispatch has zero dimensions")

	// ErrGPUTimeout is returned when the GPU does not signal completion in time.
	ErrGPUTimeout = errors.New("pipeline: GPU timeout")
)

// Shader binding slots. Must match the @binding declarations shared by every
// filter shader: the uniform parameter block, the source pixels, the
// secondary pixels (mask, displacement map, or transition target), and the
// output pixels.
const (
	bindingUniforms  = 0
	bindingSource    = 1
	bindingSecondary = 2
	bindingOutput    = 3
)

// workgroupDim is the compute workgroup tile edge in pixels.
const workgroupDim = 16

// fenceTimeout is the maximum time to wait for GPU work to complete.
const fenceTimeout = 5 * time.Second

// Options configures pipeline creation. The zero value selects defaults.
type Options struct {
	// Label is the debug name used for all GPU objects. Defaults to "filter".
	Label string

	// EntryPoint is the compute entry function. Defaults to "cs_filter".
	EntryPoint string

	// MinUniformSize is the minimum encoded parameter block size declared in
	// the bind group layout. Defaults to 16 (the header-only block).
	MinUniformSize uint64
}

func (o Options) withDefaults() Options {
	if o.Label == "" {
		o.Label = "filter"
	}
	if o.EntryPoint == "" {
		o.EntryPoint = "cs_filter"
	}
	if o.MinUniformSize == 0 {
		o.MinUniformSize = 16
	}
	return o
}

// FilterPipeline holds the compiled shader and layout objects for one filter.
//
// FilterPipeline is safe for concurrent use; dispatches are serialized.
type FilterPipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue
	opts   Options

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	spirv []uint32

	initialized bool
}

// New compiles the WGSL source and builds the compute pipeline.
func New(device hal.Device, queue hal.Queue, wgsl string, opts Options) (*FilterPipeline, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if wgsl == "" {
		return nil, ErrEmptyShader
	}

	p := &FilterPipeline{
		device: device,
		queue:  queue,
		opts:   opts.withDefaults(),
	}

	if err := p.init(wgsl); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

func (p *FilterPipeline) init(wgsl string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return fmt.Errorf("pipeline: compile shader: %w", err)
	}

	p.spirv = make([]uint32, len(spirvBytes)/4)
	for i := range p.spirv {
		p.spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.opts.Label + "_shader",
		Source: hal.ShaderSource{SPIRV: p.spirv},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create shader module: %w", err)
	}
	p.shader = shader

	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.opts.Label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    bindingUniforms,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: p.opts.MinUniformSize,
				},
			},
			{
				Binding:    bindingSource,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    bindingSecondary,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    bindingOutput,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.opts.Label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  p.opts.Label + "_pipeline",
		Layout: p.pipeLayout,
		Compute: hal.ComputeState{
			Module:     p.shader,
			EntryPoint: p.opts.EntryPoint,
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create compute pipeline: %w", err)
	}
	p.pipeline = pipeline

	p.initialized = true
	return nil
}

// IsInitialized reports whether the pipeline is ready to dispatch.
func (p *FilterPipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SPIRVCode returns the compiled SPIR-V words.
func (p *FilterPipeline) SPIRVCode() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spirv
}

// WorkgroupCounts returns the dispatch grid covering a width x height pixel
// region with workgroupDim-square workgroups.
func WorkgroupCounts(width, height uint32) (x, y uint32) {
	x = (width + workgroupDim - 1) / workgroupDim
	y = (height + workgroupDim - 1) / workgroupDim
	return x, y
}

// Dispatch runs the filter once.
//
// params is the encoded uniform block (see coreimage.EncodeParams), source
// holds tightly packed RGBA pixels of the input image, and secondary
// optionally holds the pixels of a second input (blur mask, displacement
// map, transition target); filters without one leave it nil and the source
// buffer is bound in its place. The returned slice holds the output RGBA
// pixels, width*height*4 bytes.
func (p *FilterPipeline) Dispatch(params, source, secondary []byte, width, height uint32) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrNotInitialized
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyDispatch
	}

	res := &dispatchResources{device: p.device}
	defer res.cleanup()

	if err := p.createDispatchBuffers(res, params, source, secondary, width, height); err != nil {
		return nil, err
	}
	if err := p.encodePass(res, width, height); err != nil {
		return nil, err
	}
	if err := p.submitAndWait(res); err != nil {
		return nil, err
	}

	out := make([]byte, int(width)*int(height)*4)
	if err := p.queue.ReadBuffer(res.output, 0, out); err != nil {
		return nil, fmt.Errorf("pipeline: readback: %w", err)
	}

	coreimage.Logger().Debug("pipeline: dispatched filter",
		"label", p.opts.Label,
		"size", fmt.Sprintf("%dx%d", width, height),
		"params_bytes", len(params))

	return out, nil
}

// dispatchResources collects per-dispatch GPU objects for deferred cleanup.
type dispatchResources struct {
	device hal.Device

	uniforms  hal.Buffer
	source    hal.Buffer
	secondary hal.Buffer
	output    hal.Buffer
	bindGroup hal.BindGroup
	cmdBuf    hal.CommandBuffer
	fence     hal.Fence
}

func (r *dispatchResources) cleanup() {
	if r.device == nil {
		return
	}
	if r.fence != nil {
		r.device.DestroyFence(r.fence)
	}
	if r.cmdBuf != nil {
		r.device.FreeCommandBuffer(r.cmdBuf)
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
	}
	for _, b := range []hal.Buffer{r.uniforms, r.source, r.secondary, r.output} {
		if b != nil {
			r.device.DestroyBuffer(b)
		}
	}
}

func (p *FilterPipeline) createDispatchBuffers(res *dispatchResources, params, source, secondary []byte, width, height uint32) error {
	pixelBytes := uint64(width) * uint64(height) * 4

	uniformBuf, err := p.createBuffer("uniforms", uint64(len(params)),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	res.uniforms = uniformBuf
	p.queue.WriteBuffer(uniformBuf, 0, params)

	sourceBuf, err := p.createBuffer("source", uint64(len(source)),
		gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	res.source = sourceBuf
	p.queue.WriteBuffer(sourceBuf, 0, source)

	// Filters with a single input bind the source in the secondary slot so
	// the layout stays uniform across the whole catalog.
	if len(secondary) > 0 {
		secondaryBuf, err := p.createBuffer("secondary", uint64(len(secondary)),
			gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
		if err != nil {
			return err
		}
		res.secondary = secondaryBuf
		p.queue.WriteBuffer(secondaryBuf, 0, secondary)
	}

	outputBuf, err := p.createBuffer("output", pixelBytes,
		gputypes.BufferUsageStorage|gputypes.BufferUsageCopySrc)
	if err != nil {
		return err
	}
	res.output = outputBuf

	secondaryBinding := res.secondary
	if secondaryBinding == nil {
		secondaryBinding = res.source
	}

	entry := func(binding uint32, buf hal.Buffer) gputypes.BindGroupEntry {
		return gputypes.BindGroupEntry{
			Binding: binding,
			Resource: gputypes.BufferBinding{
				Buffer: buf.NativeHandle(),
				Offset: 0,
				Size:   0, // entire buffer
			},
		}
	}

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.opts.Label + "_bg",
		Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			entry(bindingUniforms, res.uniforms),
			entry(bindingSource, res.source),
			entry(bindingSecondary, secondaryBinding),
			entry(bindingOutput, res.output),
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create bind group: %w", err)
	}
	res.bindGroup = bindGroup

	return nil
}

func (p *FilterPipeline) createBuffer(role string, size uint64, usage gputypes.BufferUsage) (hal.Buffer, error) {
	if size == 0 {
		return nil, fmt.Errorf("pipeline: %s buffer size is 0", role)
	}
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: p.opts.Label + "_" + role,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: create %s buffer: %w", role, err)
	}
	return buf, nil
}

func (p *FilterPipeline) encodePass(res *dispatchResources, width, height uint32) error {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: p.opts.Label + "_encoder",
	})
	if err != nil {
		return fmt.Errorf("pipeline: create command encoder: %w", err)
	}

	if err := encoder.BeginEncoding(p.opts.Label); err != nil {
		return fmt.Errorf("pipeline: begin encoding: %w", err)
	}

	wgX, wgY := WorkgroupCounts(width, height)

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{
		Label: p.opts.Label + "_pass",
	})
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, res.bindGroup, nil)
	pass.Dispatch(wgX, wgY, 1)
	pass.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("pipeline: end encoding: %w", err)
	}
	res.cmdBuf = cmdBuf
	return nil
}

func (p *FilterPipeline) submitAndWait(res *dispatchResources) error {
	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("pipeline: create fence: %w", err)
	}
	res.fence = fence

	if err := p.queue.Submit([]hal.CommandBuffer{res.cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("pipeline: submit: %w", err)
	}

	ok, err := p.device.Wait(fence, 1, fenceTimeout)
	if err != nil {
		return fmt.Errorf("pipeline: wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w after %v", ErrGPUTimeout, fenceTimeout)
	}
	return nil
}

// Destroy releases all GPU resources. Safe to call multiple times.
func (p *FilterPipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyComputePipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
	p.initialized = false
}
