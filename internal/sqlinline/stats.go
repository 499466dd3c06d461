package sqlinline

const QCountNGOs = `--sql 3f8b1c2e-9d47-4a10-b6ce-5a92e7d013a4
select count(*) from ngos;
`

const QCountProfiles = `--sql 7c25d9f1-044b-4e83-9b77-2cf1a86e5d90
select count(*) from profiles;
`

const QListDonationsJoined = `--sql b1e64a07-58c3-4df2-8a19-640dd2f7c355
select d.id,
       d.amount::text,
       d.message,
       p.full_name,
       n.name,
       c.name,
       d.created_at
from donations d
left join profiles p on p.id = d.user_id
left join ngos n on n.id = d.ngo_id
left join categories c on c.id = n.category_id
order by d.created_at desc;
`

const QListDonationsByDonor = `--sql e9273c48-6b1f-4c06-95ad-18f40b2a6c71
select d.id,
       d.amount::text,
       d.message,
       p.full_name,
       n.name,
       c.name,
       d.created_at
from donations d
left join profiles p on p.id = d.user_id
left join ngos n on n.id = d.ngo_id
left join categories c on c.id = n.category_id
where d.user_id = $1::uuid
order by d.created_at desc;
`
