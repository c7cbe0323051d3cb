package planner

import (
	"container/heap"
	"math"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1, lon1, lat2, lon2 = rad(lat1), rad(lon1), rad(lat2), rad(lon2)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

type edge struct {
	to string
	km float64
}

// Graph is a complete graph over the candidate place set with geodesic
// edge weights. Construction is quadratic in the number of places, so the
// loader caps the set before building one.
//
// Geodesic weights satisfy the triangle inequality, which makes every
// shortest path equal to its direct edge. The Dijkstra search is kept
// anyway so the distance model can be swapped for a road network without
// changing callers.
type Graph struct {
	places map[string]Place
	adj    map[string][]edge
}

// NewGraph builds the complete distance graph from the given places.
func NewGraph(places []Place) *Graph {
	g := &Graph{
		places: make(map[string]Place, len(places)),
		adj:    make(map[string][]edge, len(places)),
	}
	for _, p := range places {
		g.places[p.ID] = p
	}
	for _, a := range places {
		edges := make([]edge, 0, len(places)-1)
		for _, b := range places {
			if a.ID == b.ID {
				continue
			}
			km := Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
			edges = append(edges, edge{to: b.ID, km: km})
		}
		g.adj[a.ID] = edges
	}
	return g
}

// Place looks up a node by id.
func (g *Graph) Place(id string) (Place, bool) {
	p, ok := g.places[id]
	return p, ok
}

// Size is the node count.
func (g *Graph) Size() int { return len(g.places) }

type queueItem struct {
	id   string
	dist float64
}

type distQueue []queueItem

func (q distQueue) Len() int            { return len(q) }
func (q distQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *distQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from one place to another and returns the
// total distance in kilometers plus the node path. Unknown ids yield
// (+Inf, nil) so callers can degrade instead of failing the whole plan.
func (g *Graph) ShortestPath(from, to string) (float64, []string) {
	if _, ok := g.places[from]; !ok {
		return math.Inf(1), nil
	}
	if _, ok := g.places[to]; !ok {
		return math.Inf(1), nil
	}
	if from == to {
		return 0, []string{from}
	}

	dist := make(map[string]float64, len(g.places))
	prev := make(map[string]string, len(g.places))
	for id := range g.places {
		dist[id] = math.Inf(1)
	}
	dist[from] = 0

	visited := make(map[string]struct{}, len(g.places))
	pq := &distQueue{{id: from, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queueItem)
		if _, done := visited[cur.id]; done {
			continue
		}
		visited[cur.id] = struct{}{}
		if cur.id == to {
			break
		}
		for _, e := range g.adj[cur.id] {
			if _, done := visited[e.to]; done {
				continue
			}
			if next := cur.dist + e.km; next < dist[e.to] {
				dist[e.to] = next
				prev[e.to] = cur.id
				heap.Push(pq, queueItem{id: e.to, dist: next})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return math.Inf(1), nil
	}

	path := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return dist[to], path
}

// ShortestDistance is ShortestPath without the path.
func (g *Graph) ShortestDistance(from, to string) float64 {
	d, _ := g.ShortestPath(from, to)
	return d
}

// OptimizeRoute orders the given places with a greedy nearest-neighbor
// heuristic, an approximate traveling-salesperson ordering. The walk
// starts at start when it belongs to the set, otherwise at the first id.
// Ties break on the lexically smaller id so output is deterministic.
func (g *Graph) OptimizeRoute(ids []string, start string) []string {
	if len(ids) <= 1 {
		return append([]string(nil), ids...)
	}

	current := ids[0]
	if start != "" {
		for _, id := range ids {
			if id == start {
				current = start
				break
			}
		}
	}

	remaining := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remaining[id] = struct{}{}
	}
	delete(remaining, current)

	route := []string{current}
	for len(remaining) > 0 {
		nearest := ""
		best := math.Inf(1)
		for id := range remaining {
			d := g.ShortestDistance(current, id)
			if d < best || (d == best && (nearest == "" || id < nearest)) {
				best = d
				nearest = id
			}
		}
		route = append(route, nearest)
		delete(remaining, nearest)
		current = nearest
	}
	return route
}

// RouteDistance sums the leg distances of a route in visiting order.
func (g *Graph) RouteDistance(ids []string) float64 {
	if len(ids) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(ids)-1; i++ {
		total += g.ShortestDistance(ids[i], ids[i+1])
	}
	return total
}
