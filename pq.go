package gridastar

// queueItem is one frontier entry. node indexes the stepper's arena.
type queueItem struct {
	node     int
	position Cell
	estimate int
	sequence int
}

// priorityQueue orders by estimate, then by insertion sequence.
type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].estimate != queue[j].estimate {
		return queue[i].estimate < queue[j].estimate
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(*queueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
