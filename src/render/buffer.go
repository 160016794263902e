package render

import (
	"errors"
	"unsafe"

	"github.com/vulkan-go/vulkan"
)

// createBuffer makes a host-visible, host-coherent buffer of len(data) bytes
// and copies data into it.
func createBuffer(ctx Context, data []byte, usage vulkan.BufferUsageFlags) (buf vulkan.Buffer, mem vulkan.DeviceMemory, err error) {
	dev := ctx.Device()

	ret := vulkan.CreateBuffer(dev, &vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(len(data)),
		Usage:       usage,
		SharingMode: vulkan.SharingModeExclusive,
	}, nil, &buf)
	if err = NewError(ret); err != nil {
		return buf, mem, err
	}

	var memReq vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(dev, buf, &memReq)
	memReq.Deref()

	memType, err := findMemoryType(ctx.MemoryProperties(), memReq.MemoryTypeBits,
		vulkan.MemoryPropertyFlags(vulkan.MemoryPropertyHostVisibleBit|vulkan.MemoryPropertyHostCoherentBit))
	if err != nil {
		vulkan.DestroyBuffer(dev, buf, nil)
		return buf, mem, err
	}

	ret = vulkan.AllocateMemory(dev, &vulkan.MemoryAllocateInfo{
		SType:           vulkan.StructureTypeMemoryAllocateInfo,
		AllocationSize:  memReq.Size,
		MemoryTypeIndex: memType,
	}, nil, &mem)
	if err = NewError(ret); err != nil {
		vulkan.DestroyBuffer(dev, buf, nil)
		return buf, mem, err
	}

	if err = NewError(vulkan.BindBufferMemory(dev, buf, mem, 0)); err != nil {
		vulkan.DestroyBuffer(dev, buf, nil)
		vulkan.FreeMemory(dev, mem, nil)
		return buf, mem, err
	}

	var pData unsafe.Pointer
	if err = NewError(vulkan.MapMemory(dev, mem, 0, vulkan.DeviceSize(len(data)), 0, &pData)); err != nil {
		vulkan.DestroyBuffer(dev, buf, nil)
		vulkan.FreeMemory(dev, mem, nil)
		return buf, mem, err
	}
	vulkan.Memcopy(pData, data)
	vulkan.UnmapMemory(dev, mem)

	return buf, mem, nil
}

// findMemoryType picks a memory type allowed by typeBits that has all the
// requested property flags.
func findMemoryType(props vulkan.PhysicalDeviceMemoryProperties, typeBits uint32, flags vulkan.MemoryPropertyFlags) (uint32, error) {
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		mt := props.MemoryTypes[i]
		mt.Deref()
		if mt.PropertyFlags&flags == flags {
			return i, nil
		}
	}
	return 0, errors.New("render: no suitable memory type for mesh buffer")
}
