// Package render is the accelerator-facing edge of the mesh core. It flattens
// a mesh into the contiguous float32/uint32 arrays a GPU consumes and uploads
// them into host-visible Vulkan buffers. Kernel scheduling is the backend's
// business; each packed element is independent, so a backend may process them
// in any order or all at once.
package render

import (
	"github.com/vulkan-go/vulkan"

	"tmesh/src/trimesh"
)

// Context supplies the Vulkan handles buffer uploads run against.
// Implementations are expected to have called Deref on the memory properties
// before returning them.
type Context interface {
	Device() vulkan.Device
	Queue() vulkan.Queue
	MemoryProperties() vulkan.PhysicalDeviceMemoryProperties
}

// MeshBuffers holds the device-side storage for one packed mesh.
type MeshBuffers struct {
	VertexBuffer vulkan.Buffer
	VertexMemory vulkan.DeviceMemory
	VertexSize   vulkan.DeviceSize

	IndexBuffer vulkan.Buffer
	IndexMemory vulkan.DeviceMemory
	IndexSize   vulkan.DeviceSize

	IndexCount uint32
}

// Upload creates host-visible vertex and index buffers for the packed mesh
// and copies the data in. On error nothing is leaked: partially created
// resources are released before returning.
func Upload(ctx Context, packed PackedMesh) (MeshBuffers, error) {
	vertexBytes := packed.VertexBytes()
	indexBytes := packed.IndexBytes()

	usage := vulkan.BufferUsageFlags(vulkan.BufferUsageStorageBufferBit)
	vb, vm, err := createBuffer(ctx, vertexBytes,
		usage|vulkan.BufferUsageFlags(vulkan.BufferUsageVertexBufferBit))
	if err != nil {
		return MeshBuffers{}, err
	}
	ib, im, err := createBuffer(ctx, indexBytes,
		usage|vulkan.BufferUsageFlags(vulkan.BufferUsageIndexBufferBit))
	if err != nil {
		dev := ctx.Device()
		vulkan.DestroyBuffer(dev, vb, nil)
		vulkan.FreeMemory(dev, vm, nil)
		return MeshBuffers{}, err
	}

	trimesh.Logger().Debug("uploaded mesh buffers",
		"vertexBytes", len(vertexBytes), "indexBytes", len(indexBytes))
	return MeshBuffers{
		VertexBuffer: vb,
		VertexMemory: vm,
		VertexSize:   vulkan.DeviceSize(len(vertexBytes)),
		IndexBuffer:  ib,
		IndexMemory:  im,
		IndexSize:    vulkan.DeviceSize(len(indexBytes)),
		IndexCount:   uint32(packed.NumIndices()),
	}, nil
}

// Release frees the buffers and memory held by b.
func Release(ctx Context, b MeshBuffers) {
	dev := ctx.Device()
	vulkan.DestroyBuffer(dev, b.VertexBuffer, nil)
	vulkan.FreeMemory(dev, b.VertexMemory, nil)
	vulkan.DestroyBuffer(dev, b.IndexBuffer, nil)
	vulkan.FreeMemory(dev, b.IndexMemory, nil)
}
