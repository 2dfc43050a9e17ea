package fwdlist

// node узел списка, содержащий значение и владеющую ссылку на следующий
// узел. Каждый узел принадлежит ровно одному предшественнику: либо
// фиктивной голове списка, либо предыдущему узлу.
type node[T any] struct {
	value T
	next  *node[T]
}

func (n *node[T]) cleanup() {
	n.next = nil // для упрощения работы GC
}
