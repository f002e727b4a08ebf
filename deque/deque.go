/**
 *
 * 利用数组实现双端队列，用于记录压力剖面的积分路径
 * 液柱段在尾部追加，气柱段在头部插入
 *
 */

package deque

// Sample 剖面上的一个点
type Sample struct {
	Depth    float64 // 深度 (m)
	Pressure float64 // 压力 (MPa)
}

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素
	Get(i int) Sample

	// 队首、队尾元素
	First() Sample
	Last() Sample

	// 正向遍历
	Traverse(f func(i int, s Sample))

	// 在队列结尾增加一个元素
	AddLast(s Sample)

	// 在队列头部增加一个元素
	AddFirst(s Sample)
	IsEmpty() bool
}
