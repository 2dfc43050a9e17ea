package fwdlist

// cursor общая для обоих итераторов часть: позиция в цепочке узлов.
// Нулевой указатель означает позицию "за последним элементом".
type cursor[T any] struct {
	n *node[T]
}

func (c *cursor[T]) advance() {
	if c.n == nil {
		panic("fwdlist: advance of an end or unset iterator")
	}

	c.n = c.n.next
}

func (c cursor[T]) deref() *T {
	if c.n == nil {
		panic("fwdlist: dereference of an end or unset iterator")
	}

	return &c.n.value
}

// Iter итератор с доступом к значениям элементов на чтение и запись.
//
// Итераторы являются сравнимыми значениями: два итератора равны тогда и
// только тогда, когда они ссылаются на один и тот же узел, либо оба равны
// End. Итератор не владеет узлом и становится недействительным только
// после удаления узла из списка.
type Iter[T any] struct {
	cursor[T]
}

// Next переход к следующему элементу, аналог преинкремента.
// Вызов на итераторе равном End либо на нулевом итераторе вызывает панику.
func (it *Iter[T]) Next() {
	it.advance()
}

// Step переход к следующему элементу с возвратом прежней позиции,
// аналог постинкремента. Требования те же, что и у Next.
func (it *Iter[T]) Step() Iter[T] {
	prev := *it
	it.advance()
	return prev
}

// Value возврат значения текущего элемента.
// Вызов на итераторе равном End либо на нулевом итераторе вызывает панику.
func (it Iter[T]) Value() T {
	return *it.deref()
}

// Set замена значения текущего элемента. Требования те же, что и у Value.
func (it Iter[T]) Set(v T) {
	*it.deref() = v
}

// Ptr указатель на значение текущего элемента. Указатель действителен до
// тех пор, пока узел остаётся в списке. Требования те же, что и у Value.
func (it Iter[T]) Ptr() *T {
	return it.deref()
}

// Const конвертация в итератор с доступом только на чтение. Полученный
// итератор ссылается на тот же узел, т.е. сравнение его с итератором
// на ту же позицию всегда даёт равенство.
func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{it.cursor}
}

// ConstIter итератор с доступом к значениям элементов только на чтение.
// Правила сравнения и действительности те же, что и у Iter.
type ConstIter[T any] struct {
	cursor[T]
}

// Next переход к следующему элементу, аналог преинкремента.
// Вызов на итераторе равном CEnd либо на нулевом итераторе вызывает панику.
func (it *ConstIter[T]) Next() {
	it.advance()
}

// Step переход к следующему элементу с возвратом прежней позиции,
// аналог постинкремента. Требования те же, что и у Next.
func (it *ConstIter[T]) Step() ConstIter[T] {
	prev := *it
	it.advance()
	return prev
}

// Value возврат значения текущего элемента.
// Вызов на итераторе равном CEnd либо на нулевом итераторе вызывает панику.
func (it ConstIter[T]) Value() T {
	return *it.deref()
}
