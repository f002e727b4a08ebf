package deque

// 数组大小基数
const base = 8

// ArrDeque 环形数组，容量不足时按两倍扩容
type ArrDeque struct {
	arr  []Sample
	head int // 队首下标
	size int // 元素个数
}

// 工厂方法，容量向上取整到 base 的倍数
func NewArrDeque(capacity int) *ArrDeque {
	if capacity <= 0 {
		capacity = base
	}
	remainder := capacity % base
	if remainder != 0 {
		capacity = capacity - remainder + base
	}
	return &ArrDeque{
		arr: make([]Sample, capacity),
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}

func (ad *ArrDeque) index(i int) int {
	return (ad.head + i) % len(ad.arr)
}

func (ad *ArrDeque) Get(i int) Sample {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque) First() Sample {
	return ad.Get(0)
}

func (ad *ArrDeque) Last() Sample {
	return ad.Get(ad.size - 1)
}

func (ad *ArrDeque) Traverse(f func(i int, s Sample)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque) AddLast(s Sample) {
	ad.grow()
	ad.arr[ad.index(ad.size)] = s
	ad.size++
}

func (ad *ArrDeque) AddFirst(s Sample) {
	ad.grow()
	ad.head = (ad.head - 1 + len(ad.arr)) % len(ad.arr)
	ad.arr[ad.head] = s
	ad.size++
}

// 扩容时把元素按顺序搬到新数组头部
func (ad *ArrDeque) grow() {
	if ad.size < len(ad.arr) {
		return
	}
	arr := make([]Sample, len(ad.arr)*2)
	for i := 0; i < ad.size; i++ {
		arr[i] = ad.arr[ad.index(i)]
	}
	ad.arr = arr
	ad.head = 0
}

// Split 拆分为深度与压力两个序列
func (ad *ArrDeque) Split() (depths, pressures []float64) {
	depths = make([]float64, 0, ad.size)
	pressures = make([]float64, 0, ad.size)
	ad.Traverse(func(_ int, s Sample) {
		depths = append(depths, s.Depth)
		pressures = append(pressures, s.Pressure)
	})
	return
}

// Dedup 去除与前一个保留点深度差不超过 minGap 的点，返回新队列
func Dedup(d Deque, minGap float64) *ArrDeque {
	res := NewArrDeque(d.Size())
	d.Traverse(func(i int, s Sample) {
		if res.IsEmpty() || s.Depth > res.Last().Depth+minGap {
			res.AddLast(s)
		}
	})
	return res
}
