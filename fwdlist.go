// Package fwdlist реализация обобщённого односвязного списка с фиктивным
// головным узлом. Поддерживает вставку и удаление в начале и после
// произвольной позиции за O(1), однонаправленный обход парой итераторов
// (изменяющим и читающим), лексикографическое сравнение и копирование по
// схеме "построить замену — обменять".
package fwdlist

import (
	"github.com/sirkon/errors"
)

// New конструктор списка из данной последовательности значений,
// в том числе пустой.
func New[T any](values ...T) *List[T] {
	var l List[T]
	l.fill(values)

	return &l
}

// List односвязный список. Нулевое значение — готовый к использованию
// пустой список.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	// Фиктивный узел, его слот значения никогда не читается.
	// Обеспечивает единообразную вставку "перед первым элементом"
	// и после произвольного элемента.
	head node[T]
	size int
}

// Len возвращает количество элементов в списке за O(1).
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty проверка, что список пуст, за O(1).
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront вставка значения в начало списка.
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{
		value: value,
		next:  l.head.next,
	}
	l.size++
}

// PopFront удаление первого элемента списка. Вызов на пустом списке
// ничего не делает и ошибкой не является.
func (l *List[T]) PopFront() {
	first := l.head.next
	if first == nil {
		return
	}

	l.head.next = first.next
	first.cleanup()
	l.size--
}

// Clear удаление всех элементов списка. Фиктивная голова остаётся на
// месте, повторный вызов на пустом списке ничего не делает.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		next := l.head.next.next
		l.head.next.cleanup()
		l.head.next = next
	}

	l.size = 0
}

// BeforeBegin итератор на позицию перед первым элементом. Разыменовывать
// его нельзя, но он является корректной позицией для InsertAfter и
// EraseAfter, что позволяет выражать вставку в начало списка через общий
// механизм вставки после позиции.
func (l *List[T]) BeforeBegin() Iter[T] {
	return Iter[T]{cursor[T]{&l.head}}
}

// CBeforeBegin аналог BeforeBegin для итератора с доступом только на чтение.
func (l *List[T]) CBeforeBegin() ConstIter[T] {
	return ConstIter[T]{cursor[T]{&l.head}}
}

// Begin итератор на первый элемент списка. Для пустого списка равен End.
func (l *List[T]) Begin() Iter[T] {
	return Iter[T]{cursor[T]{l.head.next}}
}

// End итератор на позицию за последним элементом. Разыменовывать его
// нельзя. Не зависит от длины списка, вычисляется за O(1).
func (l *List[T]) End() Iter[T] {
	return Iter[T]{}
}

// CBegin итератор с доступом только на чтение на первый элемент списка.
// Для пустого списка равен CEnd.
func (l *List[T]) CBegin() ConstIter[T] {
	return ConstIter[T]{cursor[T]{l.head.next}}
}

// CEnd итератор с доступом только на чтение на позицию за последним
// элементом. Разыменовывать его нельзя. Вычисляется за O(1).
func (l *List[T]) CEnd() ConstIter[T] {
	return ConstIter[T]{}
}

// InsertAfter вставка значения сразу после позиции pos за O(1). Позицией
// может быть BeforeBegin либо любой элемент этого списка, но не End и не
// нулевой итератор — такие значения вызывают панику. Возвращает итератор
// на вставленный элемент.
func (l *List[T]) InsertAfter(pos ConstIter[T], value T) Iter[T] {
	if pos.n == nil {
		panic("fwdlist: insert after an end or unset iterator")
	}

	// Узел подключается к цепочке только после того, как полностью создан,
	// поэтому до этой точки состояние списка не меняется.
	n := &node[T]{
		value: value,
		next:  pos.n.next,
	}
	pos.n.next = n
	l.size++

	return Iter[T]{cursor[T]{n}}
}

// EraseAfter удаление элемента, следующего сразу за позицией pos, за O(1).
// Позицией может быть BeforeBegin либо любой элемент этого списка, имеющий
// следующий за ним элемент; End, нулевой итератор и позиция последнего
// элемента вызывают панику. Возвращает итератор на элемент, оказавшийся
// следующим за pos, либо End если такого нет.
func (l *List[T]) EraseAfter(pos ConstIter[T]) Iter[T] {
	if pos.n == nil {
		panic("fwdlist: erase after an end or unset iterator")
	}

	victim := pos.n.next
	if victim == nil {
		panic("fwdlist: erase after the last element")
	}

	pos.n.next = victim.next
	victim.cleanup()
	l.size--

	return Iter[T]{cursor[T]{pos.n.next}}
}

// Clone создание полностью независимой копии списка: тот же порядок
// значений, своя цепочка узлов.
func (l *List[T]) Clone() *List[T] {
	var res List[T]

	tail := &res.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
		res.size++
	}

	return &res
}

// CloneFunc создание независимой копии списка с копированием значений
// через данную функцию. При ошибке недостроенная копия отбрасывается
// целиком, а ошибка возвращается с номером элемента в контексте.
func (l *List[T]) CloneFunc(cp func(v T) (T, error)) (*List[T], error) {
	var res List[T]

	tail := &res.head
	var index int
	for n := l.head.next; n != nil; n = n.next {
		v, err := cp(n.value)
		if err != nil {
			return nil, errors.Wrap(err, "copy list value").Int("index", index)
		}

		tail.next = &node[T]{value: v}
		tail = tail.next
		res.size++
		index++
	}

	return &res, nil
}

// Assign замена содержимого списка копией содержимого other по схеме
// "построить замену — обменять": сначала строится полная независимая
// копия, затем за O(1) происходит обмен с ней. Присваивание списка самому
// себе безопасно.
func (l *List[T]) Assign(other *List[T]) {
	l.Swap(other.Clone())
}

// AssignFunc то же, что и Assign, но значения копируются через данную
// функцию. При ошибке список остаётся ровно в прежнем состоянии: обмен
// происходит только после того, как замена построена полностью.
func (l *List[T]) AssignFunc(other *List[T], cp func(v T) (T, error)) error {
	tmp, err := other.CloneFunc(cp)
	if err != nil {
		return errors.Wrap(err, "build replacement content")
	}

	l.Swap(tmp)

	return nil
}

// Swap обмен содержимым с другим списком за O(1). Значения элементов не
// копируются, итераторы на элементы продолжают ссылаться на свои узлы.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// fill наполнение пустого списка значениями данной последовательности
// с сохранением порядка.
func (l *List[T]) fill(values []T) {
	tail := &l.head
	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
		l.size++
	}
}
