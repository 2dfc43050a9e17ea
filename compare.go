package fwdlist

import (
	"golang.org/x/exp/constraints"
)

// Equal проверка, что оба списка имеют одинаковую длину и попарно равные
// элементы в одном и том же порядке.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if an.value != bn.value {
			return false
		}
		bn = bn.next
	}

	return true
}

// EqualFunc аналог Equal для типов, не допускающих сравнение оператором ==.
// Равенство элементов определяется данной функцией.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if !eq(an.value, bn.value) {
			return false
		}
		bn = bn.next
	}

	return true
}

// Less лексикографическое сравнение списков: элементы сравниваются
// попарно, первая же пара различающихся элементов определяет результат;
// если различий не нашлось, меньше тот список, который является строгим
// префиксом другого. Тип элементов обязан иметь полный строгий порядок.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		switch {
		case an.value < bn.value:
			return true
		case bn.value < an.value:
			return false
		}

		an, bn = an.next, bn.next
	}

	return an == nil && bn != nil
}

// LessFunc аналог Less с данной функцией трёхстороннего сравнения:
// cmp возвращает отрицательное значение если x меньше y, ноль при
// равенстве и положительное значение если x больше y.
func LessFunc[T any](a, b *List[T], cmp func(x, y T) int) bool {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if v := cmp(an.value, bn.value); v != 0 {
			return v < 0
		}

		an, bn = an.next, bn.next
	}

	return an == nil && bn != nil
}

// LessEq проверка, что список a меньше либо равен списку b.
func LessEq[T constraints.Ordered](a, b *List[T]) bool {
	return Equal(a, b) || Less(a, b)
}

// Greater проверка, что список a больше списка b.
func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// GreaterEq проверка, что список a больше либо равен списку b.
func GreaterEq[T constraints.Ordered](a, b *List[T]) bool {
	return Equal(a, b) || Less(b, a)
}

// Swap обмен содержимым двух списков за O(1).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
