package ioformats

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
)

// ReadDIMACSGraph reads a DIMACS ".gr" edge list: comment lines start
// with 'c', the problem line starts with 'p' and names the node/edge
// counts, and arc lines start with 'a' followed by "source target
// weight". DIMACS numbers nodes consecutively starting at 1; this
// renumbers them to the dense 0-based IDs core.StaticGraph expects.
func ReadDIMACSGraph(path string, weightType WeightType) ([]core.InputEdge[uint32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening dimacs graph: %w", err)
	}
	defer f.Close()

	var edges []core.InputEdge[uint32]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'a':
			tokens := strings.Fields(line[1:])
			if len(tokens) != 3 {
				continue
			}
			source, err := strconv.ParseUint(tokens[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ioformats: dimacs arc source: %w", err)
			}
			target, err := strconv.ParseUint(tokens[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ioformats: dimacs arc target: %w", err)
			}
			weight, err := strconv.ParseUint(tokens[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ioformats: dimacs arc weight: %w", err)
			}
			edges = append(edges, core.NewInputEdge(
				core.NodeID(source-1),
				core.NodeID(target-1),
				weightType.apply(uint32(weight)),
			))
		default:
			// 'c' comments and 'p' problem lines carry no edge data.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading dimacs graph: %w", err)
	}
	return edges, nil
}

// ReadDIMACSCoordinates reads a DIMACS ".co" coordinate file: 'v' lines
// are "id lon lat" in fixed-point micro-degrees, 1-based and consecutive.
func ReadDIMACSCoordinates(path string) ([]geo.FPCoordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening dimacs coordinates: %w", err)
	}
	defer f.Close()

	var coords []geo.FPCoordinate
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] != 'v' {
			continue
		}
		tokens := strings.Fields(line[1:])
		if len(tokens) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		lon, err := strconv.ParseInt(tokens[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioformats: dimacs coordinate lon: %w", err)
		}
		lat, err := strconv.ParseInt(tokens[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioformats: dimacs coordinate lat: %w", err)
		}
		coords = append(coords, geo.New(int32(lat), int32(lon)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading dimacs coordinates: %w", err)
	}
	return coords, nil
}
