// Package debug provides development helpers: capture of process output and
// reflective deep size measurement of values.
package debug

import (
	"fmt"
	"reflect"
	"unsafe"
)

// SizeOf returns the deep size of v in bytes, following pointers, maps,
// slices and interfaces. Shared pointers are counted once.
func SizeOf(v interface{}) uint64 {
	return getSize(reflect.ValueOf(v), make(map[uintptr]bool))
}

// FormatSize renders a byte count in human readable form ("1.5 MB").
func FormatSize(size uint64) string {
	return formatSize(size)
}

// PrintSize prints the deep size of v, with a per-field breakdown for structs.
func PrintSize(name string, v interface{}) {
	t := reflect.TypeOf(v)
	rv := reflect.ValueOf(v)
	seen := make(map[uintptr]bool)
	size := getSize(rv, seen)

	fmt.Printf("%s: %s (%s)\n", name, formatSize(size), addCommas(size))

	if t.Kind() == reflect.Struct {
		fmt.Println("  Struct fields:")
		var totalSize uint64
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			fieldSize := getSize(rv.Field(i), make(map[uintptr]bool))
			totalSize += fieldSize
			fmt.Printf("    %s: %s (%s)\n", field.Name, formatSize(fieldSize), addCommas(fieldSize))
		}
		fmt.Printf("  Total struct size: %s (%s)\n", formatSize(totalSize), addCommas(totalSize))
	}
}

func formatSize(size uint64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func addCommas(n uint64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}
	return addCommas(n/1000) + "," + str[len(str)-3:]
}

func getSize(v reflect.Value, seen map[uintptr]bool) uint64 {
	if !v.IsValid() {
		return 0
	}

	// Handle all pointer types
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return uint64(unsafe.Sizeof(v.Interface()))
		}
		if seen[v.Pointer()] {
			return 0 // Already counted this pointer
		}
		seen[v.Pointer()] = true
		return uint64(unsafe.Sizeof(v.Interface())) + getSize(v.Elem(), seen)
	}

	size := uint64(v.Type().Size())

	switch v.Kind() {
	case reflect.Slice:
		if v.Len() > 0 {
			elemSize := uint64(v.Type().Elem().Size())
			size += uint64(v.Len()) * elemSize
			// If it's a slice of pointers, resolve each pointer
			if v.Type().Elem().Kind() == reflect.Ptr {
				for i := 0; i < v.Len(); i++ {
					size += getSize(v.Index(i), seen)
				}
			}
		}
	case reflect.String:
		size += uint64(v.Len())
	case reflect.Map:
		if v.Len() > 0 {
			for _, key := range v.MapKeys() {
				size += getSize(key, seen)
				size += getSize(v.MapIndex(key), seen)
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			size += getSize(v.Field(i), seen)
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			size += getSize(v.Index(i), seen)
		}
	case reflect.Interface:
		if !v.IsNil() {
			size += getSize(v.Elem(), seen)
		}
	}

	return size
}
